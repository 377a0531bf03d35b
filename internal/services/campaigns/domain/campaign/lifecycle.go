package campaign

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/id"
)

// ErrEmptyUpdate indicates a patch with no fields set.
var ErrEmptyUpdate = apperrors.New(apperrors.CodeCampaignEmptyUpdate, "campaign update has no fields")

// New validates req and builds a Planning campaign with a generated ID.
func New(req CreateRequest, now func() time.Time, idGenerator func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	if errs := ValidateCreate(req); len(errs) > 0 {
		return Campaign{}, errs.Err()
	}
	if !req.Difficulty.Valid() {
		return Campaign{}, fmt.Errorf("invalid difficulty %d", int(req.Difficulty))
	}

	campaignID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}

	playerCount := DefaultPlayerCount
	if req.PlayerCount != nil {
		playerCount = *req.PlayerCount
	}
	createdAt := now().UTC()
	return Campaign{
		ID:          campaignID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Setting:     strings.TrimSpace(req.Setting),
		DMNotes:     strings.TrimSpace(req.DMNotes),
		Status:      StatusPlanning,
		IsActive:    true,
		Info: Info{
			Difficulty: req.Difficulty,
		},
		PlayerCount:  playerCount,
		AverageLevel: DefaultAverageLevel,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}, nil
}

// Apply merges a validated patch into c.
func Apply(c Campaign, patch UpdateRequest, now func() time.Time) (Campaign, error) {
	if err := ValidateOperation(c.Status, OpUpdate); err != nil {
		return Campaign{}, err
	}
	if patch.IsEmpty() {
		return Campaign{}, ErrEmptyUpdate
	}
	if errs := ValidateUpdate(patch); len(errs) > 0 {
		return Campaign{}, errs.Err()
	}
	if patch.Difficulty != nil && !patch.Difficulty.Valid() {
		return Campaign{}, fmt.Errorf("invalid difficulty %d", int(*patch.Difficulty))
	}

	updated := c.Clone()
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		updated.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Setting != nil {
		updated.Setting = strings.TrimSpace(*patch.Setting)
	}
	if patch.DMNotes != nil {
		updated.DMNotes = strings.TrimSpace(*patch.DMNotes)
	}
	if patch.Difficulty != nil {
		updated.Info.Difficulty = *patch.Difficulty
	}
	if patch.PlayerCount != nil {
		updated.PlayerCount = *patch.PlayerCount
	}
	if patch.IsActive != nil {
		updated.IsActive = *patch.IsActive
	}
	touch(&updated, now)
	return updated, nil
}

// StartSession advances the session counters and records the session date.
// A Planning campaign becomes Active.
func StartSession(c Campaign, now func() time.Time) (Campaign, error) {
	if err := ValidateOperation(c.Status, OpSessionStart); err != nil {
		return Campaign{}, err
	}
	if !IsPlayable(c) {
		return Campaign{}, ErrNotPlayable
	}
	updated := c.Clone()
	touch(&updated, now)
	startedAt := updated.UpdatedAt
	updated.CurrentSession++
	updated.Info.TotalSessions++
	updated.LastSessionDate = &startedAt
	if updated.Status == StatusPlanning {
		updated.Status = StatusActive
	}
	return updated, nil
}

// NextSessionNumber returns the number the next session will carry.
func NextSessionNumber(c Campaign) int {
	return c.CurrentSession + 1
}

// UpdateStats replaces the character roll-ups and any supplied world counters.
func UpdateStats(c Campaign, update StatsUpdate, now func() time.Time) (Campaign, error) {
	if err := ValidateOperation(c.Status, OpStatsUpdate); err != nil {
		return Campaign{}, err
	}
	merged := c.Info
	merged.TotalCharacters = update.TotalCharacters
	setIfPresent(&merged.TotalNPCs, update.TotalNPCs)
	setIfPresent(&merged.TotalLocations, update.TotalLocations)
	setIfPresent(&merged.TotalQuests, update.TotalQuests)
	setIfPresent(&merged.CompletedQuests, update.CompletedQuests)
	setIfPresent(&merged.TotalEncounters, update.TotalEncounters)
	if errs := ValidateStats(update, merged); len(errs) > 0 {
		return Campaign{}, errs.Err()
	}

	updated := c.Clone()
	updated.Info = merged
	updated.ActiveCharacters = update.ActiveCharacters
	updated.AverageLevel = update.AverageLevel
	touch(&updated, now)
	return updated, nil
}

func setIfPresent(dst *int, value *int) {
	if value != nil {
		*dst = *value
	}
}

// Transition moves c to target. Completing requires a playable campaign;
// completing or archiving clears the active flag.
func Transition(c Campaign, target Status, now func() time.Time) (Campaign, error) {
	if !IsTransitionAllowed(c.Status, target) {
		return Campaign{}, newTransitionError(c.Status, target)
	}
	if target == StatusCompleted && !IsPlayable(c) {
		return Campaign{}, ErrNotPlayable
	}
	updated := c.Clone()
	updated.Status = target
	if target == StatusCompleted || target == StatusArchived {
		updated.IsActive = false
	}
	touch(&updated, now)
	return updated, nil
}

// Pause puts an Active campaign on hold.
func Pause(c Campaign, now func() time.Time) (Campaign, error) {
	if err := ValidateOperation(c.Status, OpPause); err != nil {
		return Campaign{}, err
	}
	return Transition(c, StatusOnHold, now)
}

// Resume reactivates an OnHold campaign.
func Resume(c Campaign, now func() time.Time) (Campaign, error) {
	if err := ValidateOperation(c.Status, OpResume); err != nil {
		return Campaign{}, err
	}
	return Transition(c, StatusActive, now)
}

// Complete ends a playable campaign.
func Complete(c Campaign, now func() time.Time) (Campaign, error) {
	if err := ValidateOperation(c.Status, OpComplete); err != nil {
		return Campaign{}, err
	}
	return Transition(c, StatusCompleted, now)
}

// Archive shelves a campaign.
func Archive(c Campaign, now func() time.Time) (Campaign, error) {
	if err := ValidateOperation(c.Status, OpArchive); err != nil {
		return Campaign{}, err
	}
	return Transition(c, StatusArchived, now)
}

// Duplicate copies c under a new name and ID, back in Planning with session
// history and character roll-ups reset.
func Duplicate(c Campaign, name string, now func() time.Time, idGenerator func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	if errs := ValidateUpdate(UpdateRequest{Name: &name}); len(errs) > 0 {
		return Campaign{}, errs.Err()
	}
	campaignID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}

	createdAt := now().UTC()
	dup := c.Clone()
	dup.ID = campaignID
	dup.Name = strings.TrimSpace(name)
	dup.Status = StatusPlanning
	dup.IsActive = true
	dup.CurrentSession = 0
	dup.Info.TotalSessions = 0
	dup.Info.TotalCharacters = 0
	dup.ActiveCharacters = 0
	dup.AverageLevel = DefaultAverageLevel
	dup.LastSessionDate = nil
	dup.CreatedAt = createdAt
	dup.UpdatedAt = createdAt
	return dup, nil
}

// ErrInvalidImport indicates an imported document with impossible state.
var ErrInvalidImport = apperrors.New(apperrors.CodeCampaignInvalidImport, "campaign document is not valid")

// Import validates a decoded campaign document and gives it a fresh ID so it
// never collides with the campaign it was exported from.
func Import(c Campaign, now func() time.Time, idGenerator func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	playerCount := c.PlayerCount
	errs := ValidateCreate(CreateRequest{
		Name:        c.Name,
		Description: c.Description,
		Setting:     c.Setting,
		Difficulty:  c.Info.Difficulty,
		PlayerCount: &playerCount,
	})
	stats := StatsUpdate{
		ActiveCharacters: c.ActiveCharacters,
		TotalCharacters:  c.Info.TotalCharacters,
		AverageLevel:     c.AverageLevel,
	}
	// An unset level is allowed on import.
	if stats.AverageLevel == 0 {
		stats.AverageLevel = MinLevel
	}
	errs = append(errs, ValidateStats(stats, c.Info)...)
	if len(errs) > 0 {
		return Campaign{}, errs.Err()
	}
	if !c.Status.Valid() || !c.Info.Difficulty.Valid() || c.CurrentSession < 0 || c.Info.TotalSessions < 0 {
		return Campaign{}, ErrInvalidImport
	}

	campaignID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}

	out := c.Clone()
	out.ID = campaignID
	out.Name = strings.TrimSpace(out.Name)
	out.Description = strings.TrimSpace(out.Description)
	out.Setting = strings.TrimSpace(out.Setting)
	out.DMNotes = strings.TrimSpace(out.DMNotes)
	if out.Status == StatusCompleted || out.Status == StatusArchived {
		out.IsActive = false
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now().UTC()
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.UpdatedAt = time.Time{}
	touch(&out, now)
	return out, nil
}

// touch stamps UpdatedAt without letting it move backwards.
func touch(c *Campaign, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	ts := now().UTC()
	if ts.Before(c.UpdatedAt) {
		ts = c.UpdatedAt
	}
	if ts.Before(c.CreatedAt) {
		ts = c.CreatedAt
	}
	c.UpdatedAt = ts
}
