// Package settings holds the process-wide preferences of the assistant.
package settings

import (
	"slices"
	"strings"
	"time"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
)

const (
	// MaxRecentCampaigns bounds the recently viewed list.
	MaxRecentCampaigns = 5
	// DefaultBackupFrequencyHours is the backup cadence of fresh settings.
	DefaultBackupFrequencyHours = 24
	// DefaultTheme is the theme of fresh settings.
	DefaultTheme = "dark"
)

// ErrInvalidBackupFrequency indicates auto backup without a positive cadence.
var ErrInvalidBackupFrequency = apperrors.New(
	apperrors.CodeSettingsInvalidBackupPeriod,
	"Backup frequency must be greater than zero when auto backup is enabled",
)

// Settings is the preference snapshot.
type Settings struct {
	CurrentCampaignID    string    `json:"currentCampaignId,omitempty"`
	RecentCampaigns      []string  `json:"recentCampaigns"`
	AutoBackup           bool      `json:"autoBackup"`
	BackupFrequencyHours int       `json:"backupFrequencyHours"`
	Theme                string    `json:"theme"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
	// LastBackupAt is nil until the first backup is written.
	LastBackupAt *time.Time `json:"lastBackupAt,omitempty"`
}

// Default returns fresh settings stamped at now.
func Default(now time.Time) Settings {
	now = now.UTC()
	return Settings{
		RecentCampaigns:      []string{},
		AutoBackup:           true,
		BackupFrequencyHours: DefaultBackupFrequencyHours,
		Theme:                DefaultTheme,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Validate enforces a positive backup cadence when auto backup is on.
func Validate(s Settings) error {
	if s.AutoBackup && s.BackupFrequencyHours <= 0 {
		return ErrInvalidBackupFrequency
	}
	return nil
}

// BackupDue reports whether an automatic backup should run at now.
func (s Settings) BackupDue(now time.Time) bool {
	if !s.AutoBackup || s.BackupFrequencyHours <= 0 {
		return false
	}
	if s.LastBackupAt == nil {
		return true
	}
	return now.Sub(*s.LastBackupAt) >= time.Duration(s.BackupFrequencyHours)*time.Hour
}

// WithBackup records a backup written at.
func (s Settings) WithBackup(at time.Time) Settings {
	out := s.clone()
	ts := at.UTC()
	out.LastBackupAt = &ts
	out.touch(at)
	return out
}

// WithCurrentCampaign selects id and moves it to the front of the recents.
func (s Settings) WithCurrentCampaign(id string, now time.Time) Settings {
	id = strings.TrimSpace(id)
	out := s.clone()
	out.CurrentCampaignID = id
	recents := slices.DeleteFunc(out.RecentCampaigns, func(v string) bool { return v == id })
	recents = slices.Insert(recents, 0, id)
	if len(recents) > MaxRecentCampaigns {
		recents = recents[:MaxRecentCampaigns]
	}
	out.RecentCampaigns = recents
	out.touch(now)
	return out
}

// WithoutCurrentCampaign clears the selection and keeps the recents.
func (s Settings) WithoutCurrentCampaign(now time.Time) Settings {
	out := s.clone()
	out.CurrentCampaignID = ""
	out.touch(now)
	return out
}

// Forget drops every reference to a deleted campaign.
func (s Settings) Forget(id string, now time.Time) Settings {
	out := s.clone()
	if out.CurrentCampaignID == id {
		out.CurrentCampaignID = ""
	}
	out.RecentCampaigns = slices.DeleteFunc(out.RecentCampaigns, func(v string) bool { return v == id })
	out.touch(now)
	return out
}

func (s Settings) clone() Settings {
	s.RecentCampaigns = slices.Clone(s.RecentCampaigns)
	if s.LastBackupAt != nil {
		ts := *s.LastBackupAt
		s.LastBackupAt = &ts
	}
	if s.RecentCampaigns == nil {
		s.RecentCampaigns = []string{}
	}
	return s
}

func (s *Settings) touch(now time.Time) {
	ts := now.UTC()
	if ts.Before(s.UpdatedAt) {
		ts = s.UpdatedAt
	}
	s.UpdatedAt = ts
}
