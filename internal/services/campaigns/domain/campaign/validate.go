package campaign

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/message"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
)

// Validated field names.
const (
	FieldName            = "name"
	FieldDescription     = "description"
	FieldSetting         = "setting"
	FieldPlayerCount     = "playerCount"
	FieldTotalCharacters = "totalCharacters"
	FieldAverageLevel    = "averageLevel"
	FieldCompletedQuests = "completedQuests"
)

// ValidationError is one violated rule. Format is the English catalog key.
type ValidationError struct {
	Field  string
	Code   apperrors.Code
	Format string
	Args   []any
}

// Error renders the English message.
func (e ValidationError) Error() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

// Localize renders the message through p.
func (e ValidationError) Localize(p *message.Printer) string {
	if p == nil {
		return e.Error()
	}
	return p.Sprintf(e.Format, e.Args...)
}

// ValidationErrors lists every violated rule in evaluation order.
type ValidationErrors []ValidationError

// Messages renders every error in English.
func (v ValidationErrors) Messages() []string {
	if len(v) == 0 {
		return nil
	}
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Error()
	}
	return out
}

// Localize renders every error through p.
func (v ValidationErrors) Localize(p *message.Printer) []string {
	if len(v) == 0 {
		return nil
	}
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Localize(p)
	}
	return out
}

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Err returns nil when v is empty, otherwise a coded error wrapping v.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &apperrors.Error{
		Code:     apperrors.CodeCampaignValidationFailed,
		Message:  "campaign validation failed: " + v.Error(),
		Metadata: map[string]string{"Field": v[0].Field},
		Cause:    v,
	}
}

// Has reports whether any error carries code.
func (v ValidationErrors) Has(code apperrors.Code) bool {
	for _, e := range v {
		if e.Code == code {
			return true
		}
	}
	return false
}

// ValidateCreate checks a creation request against every field rule.
func ValidateCreate(req CreateRequest) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: FieldName, Code: apperrors.CodeCampaignNameEmpty, Format: "Campaign name is required"})
	} else {
		errs = appendNameLength(errs, req.Name)
	}
	errs = appendDescription(errs, req.Description)
	errs = appendSetting(errs, req.Setting)
	if req.PlayerCount != nil {
		errs = appendPlayerCount(errs, *req.PlayerCount)
	}
	return errs
}

// ValidateUpdate checks only the fields present in req. A present field is
// validated even when empty, so "supplied as empty" is rejected while "not
// supplied" is not.
func ValidateUpdate(req UpdateRequest) ValidationErrors {
	var errs ValidationErrors
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errs = append(errs, ValidationError{Field: FieldName, Code: apperrors.CodeCampaignNameEmpty, Format: "Campaign name cannot be empty"})
		} else {
			errs = appendNameLength(errs, *req.Name)
		}
	}
	if req.Description != nil {
		errs = appendDescription(errs, *req.Description)
	}
	if req.Setting != nil {
		errs = appendSetting(errs, *req.Setting)
	}
	if req.PlayerCount != nil {
		errs = appendPlayerCount(errs, *req.PlayerCount)
	}
	return errs
}

// ValidateStats checks a stats update after it has been merged into info.
func ValidateStats(update StatsUpdate, merged Info) ValidationErrors {
	var errs ValidationErrors
	if update.ActiveCharacters < 0 || update.TotalCharacters < update.ActiveCharacters {
		errs = append(errs, ValidationError{Field: FieldTotalCharacters, Code: apperrors.CodeCampaignInvalidStats, Format: "Total characters cannot be less than active characters"})
	}
	if update.AverageLevel < MinLevel || update.AverageLevel > MaxLevel {
		errs = append(errs, ValidationError{Field: FieldAverageLevel, Code: apperrors.CodeCampaignInvalidStats, Format: "Average level must be between %d and %d", Args: []any{MinLevel, MaxLevel}})
	}
	if merged.TotalNPCs < 0 || merged.TotalLocations < 0 || merged.TotalEncounters < 0 ||
		merged.TotalQuests < 0 || merged.CompletedQuests < 0 || merged.CompletedQuests > merged.TotalQuests {
		errs = append(errs, ValidationError{Field: FieldCompletedQuests, Code: apperrors.CodeCampaignInvalidStats, Format: "Completed quests must be between 0 and the total quests"})
	}
	return errs
}

func appendNameLength(errs ValidationErrors, name string) ValidationErrors {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > MaxNameLength {
		errs = append(errs, ValidationError{Field: FieldName, Code: apperrors.CodeCampaignNameTooLong, Format: "Campaign name cannot exceed %d characters", Args: []any{MaxNameLength}})
	}
	return errs
}

func appendDescription(errs ValidationErrors, description string) ValidationErrors {
	trimmed := strings.TrimSpace(description)
	switch {
	case trimmed == "":
		errs = append(errs, ValidationError{Field: FieldDescription, Code: apperrors.CodeCampaignDescriptionEmpty, Format: "Description is required"})
	case utf8.RuneCountInString(trimmed) > MaxDescriptionLength:
		errs = append(errs, ValidationError{Field: FieldDescription, Code: apperrors.CodeCampaignDescriptionTooLong, Format: "Description cannot exceed %d characters", Args: []any{MaxDescriptionLength}})
	}
	return errs
}

func appendSetting(errs ValidationErrors, setting string) ValidationErrors {
	if strings.TrimSpace(setting) == "" {
		errs = append(errs, ValidationError{Field: FieldSetting, Code: apperrors.CodeCampaignSettingEmpty, Format: "Setting is required"})
	}
	return errs
}

func appendPlayerCount(errs ValidationErrors, count int) ValidationErrors {
	if count < MinPlayerCount || count > MaxPlayerCount {
		errs = append(errs, ValidationError{Field: FieldPlayerCount, Code: apperrors.CodeCampaignInvalidPlayerCount, Format: "Player count must be between %d and %d", Args: []any{MinPlayerCount, MaxPlayerCount}})
	}
	return errs
}
