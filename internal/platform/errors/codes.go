// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Campaign validation errors
	CodeCampaignValidationFailed    Code = "CAMPAIGN_VALIDATION_FAILED"
	CodeCampaignNameEmpty           Code = "CAMPAIGN_NAME_EMPTY"
	CodeCampaignNameTooLong         Code = "CAMPAIGN_NAME_TOO_LONG"
	CodeCampaignDescriptionEmpty    Code = "CAMPAIGN_DESCRIPTION_EMPTY"
	CodeCampaignDescriptionTooLong  Code = "CAMPAIGN_DESCRIPTION_TOO_LONG"
	CodeCampaignSettingEmpty        Code = "CAMPAIGN_SETTING_EMPTY"
	CodeCampaignInvalidPlayerCount  Code = "CAMPAIGN_INVALID_PLAYER_COUNT"
	CodeCampaignInvalidStats        Code = "CAMPAIGN_INVALID_STATS"
	CodeCampaignEmptyUpdate         Code = "CAMPAIGN_EMPTY_UPDATE"
	CodeCampaignInvalidImport       Code = "CAMPAIGN_INVALID_IMPORT"
	CodeCampaignEmptyID             Code = "CAMPAIGN_EMPTY_ID"
	CodeCampaignInvalidFilter       Code = "CAMPAIGN_INVALID_FILTER"
	CodeSettingsInvalidBackupPeriod Code = "SETTINGS_INVALID_BACKUP_FREQUENCY"

	// Campaign lifecycle errors
	CodeCampaignInvalidStatusTransition Code = "CAMPAIGN_INVALID_STATUS_TRANSITION"
	CodeCampaignStatusDisallowsOp       Code = "CAMPAIGN_STATUS_DISALLOWS_OPERATION"
	CodeCampaignNotPlayable             Code = "CAMPAIGN_NOT_PLAYABLE"
	CodeCampaignDeleteBlocked           Code = "CAMPAIGN_DELETE_BLOCKED"

	// Uniqueness errors
	CodeCampaignNameTaken     Code = "CAMPAIGN_NAME_TAKEN"
	CodeCampaignAlreadyExists Code = "CAMPAIGN_ALREADY_EXISTS"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeCampaignValidationFailed,
		CodeCampaignNameEmpty,
		CodeCampaignNameTooLong,
		CodeCampaignDescriptionEmpty,
		CodeCampaignDescriptionTooLong,
		CodeCampaignSettingEmpty,
		CodeCampaignInvalidPlayerCount,
		CodeCampaignInvalidStats,
		CodeCampaignEmptyUpdate,
		CodeCampaignInvalidImport,
		CodeCampaignEmptyID,
		CodeCampaignInvalidFilter,
		CodeSettingsInvalidBackupPeriod:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeCampaignInvalidStatusTransition,
		CodeCampaignStatusDisallowsOp,
		CodeCampaignNotPlayable,
		CodeCampaignDeleteBlocked:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeCampaignNameTaken,
		CodeCampaignAlreadyExists:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}
