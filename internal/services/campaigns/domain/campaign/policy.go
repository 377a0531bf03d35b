package campaign

import (
	"fmt"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
)

// Operation describes a category of campaign operation for policy checks.
type Operation int

const (
	// OpUnspecified represents an invalid operation.
	OpUnspecified Operation = iota
	// OpRead represents read-only operations.
	OpRead
	// OpUpdate represents edits to descriptive fields.
	OpUpdate
	// OpSessionStart represents starting a new session.
	OpSessionStart
	// OpStatsUpdate represents edits to the statistical roll-ups.
	OpStatsUpdate
	// OpPause moves an active campaign on hold.
	OpPause
	// OpResume moves a paused campaign back to active.
	OpResume
	// OpComplete ends a campaign.
	OpComplete
	// OpArchive shelves a campaign.
	OpArchive
)

var (
	// ErrStatusDisallowsOperation indicates a status that disallows the requested operation.
	ErrStatusDisallowsOperation = apperrors.New(apperrors.CodeCampaignStatusDisallowsOp, "campaign status does not allow operation")
	// ErrInvalidStatusTransition indicates a disallowed status change.
	ErrInvalidStatusTransition = apperrors.New(apperrors.CodeCampaignInvalidStatusTransition, "campaign status transition is not allowed")
	// ErrNotPlayable indicates an operation that needs a playable campaign.
	ErrNotPlayable = apperrors.New(apperrors.CodeCampaignNotPlayable, "campaign is not playable")
)

// ValidateOperation ensures the campaign status allows the requested operation.
func ValidateOperation(status Status, op Operation) error {
	if op == OpUnspecified {
		return newStatusOpError(status, op)
	}
	if op == OpRead {
		return nil
	}

	switch status {
	case StatusPlanning:
		switch op {
		case OpUpdate, OpSessionStart, OpStatsUpdate, OpComplete, OpArchive:
			return nil
		default:
			return newStatusOpError(status, op)
		}
	case StatusActive:
		switch op {
		case OpUpdate, OpSessionStart, OpStatsUpdate, OpPause, OpComplete, OpArchive:
			return nil
		default:
			return newStatusOpError(status, op)
		}
	case StatusOnHold:
		switch op {
		case OpUpdate, OpStatsUpdate, OpResume, OpArchive:
			return nil
		default:
			return newStatusOpError(status, op)
		}
	case StatusCompleted:
		if op == OpArchive {
			return nil
		}
		return newStatusOpError(status, op)
	default:
		return newStatusOpError(status, op)
	}
}

// IsTransitionAllowed reports whether a status change is permitted.
func IsTransitionAllowed(from, to Status) bool {
	switch from {
	case StatusPlanning:
		return to == StatusActive || to == StatusCompleted || to == StatusArchived
	case StatusActive:
		return to == StatusOnHold || to == StatusCompleted || to == StatusArchived
	case StatusOnHold:
		return to == StatusActive || to == StatusArchived
	case StatusCompleted:
		return to == StatusArchived
	default:
		return false
	}
}

// newStatusOpError creates metadata for disallowed status/operation combinations.
func newStatusOpError(status Status, op Operation) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeCampaignStatusDisallowsOp,
		fmt.Sprintf("campaign status %s does not allow operation %s", status, op),
		map[string]string{"Status": status.String(), "Operation": op.String()},
	)
}

func newTransitionError(from, to Status) *apperrors.Error {
	return apperrors.WithMetadata(
		apperrors.CodeCampaignInvalidStatusTransition,
		fmt.Sprintf("campaign status transition not allowed: %s -> %s", from, to),
		map[string]string{"FromStatus": from.String(), "ToStatus": to.String()},
	)
}

// String returns a stable label for an operation.
func (op Operation) String() string {
	switch op {
	case OpRead:
		return "READ"
	case OpUpdate:
		return "UPDATE"
	case OpSessionStart:
		return "SESSION_START"
	case OpStatsUpdate:
		return "STATS_UPDATE"
	case OpPause:
		return "PAUSE"
	case OpResume:
		return "RESUME"
	case OpComplete:
		return "COMPLETE"
	case OpArchive:
		return "ARCHIVE"
	default:
		return "UNSPECIFIED"
	}
}
