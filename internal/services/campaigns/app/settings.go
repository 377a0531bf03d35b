package app

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/settings"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage"
)

// SettingsUpdate is a partial settings update; nil fields are left untouched.
type SettingsUpdate struct {
	AutoBackup           *bool
	BackupFrequencyHours *int
	Theme                *string
}

// loadSettings returns the saved settings, or defaults before the first save.
func (s *Service) loadSettings(ctx context.Context) (settings.Settings, error) {
	prefs, err := s.store.GetSettings(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return settings.Default(s.now()), nil
	}
	if err != nil {
		return settings.Settings{}, storeErr(err, "", "get settings")
	}
	return prefs, nil
}

// Settings returns the current preferences.
func (s *Service) Settings(ctx context.Context) (_ settings.Settings, err error) {
	if err := s.ready(); err != nil {
		return settings.Settings{}, err
	}
	ctx, span := s.startSpan(ctx, "Settings")
	defer func() { endSpan(span, err) }()
	return s.loadSettings(ctx)
}

// UpdateSettings validates and saves a preferences patch.
func (s *Service) UpdateSettings(ctx context.Context, update SettingsUpdate) (_ settings.Settings, err error) {
	if err := s.ready(); err != nil {
		return settings.Settings{}, err
	}
	ctx, span := s.startSpan(ctx, "UpdateSettings")
	defer func() { endSpan(span, err) }()

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	if update.AutoBackup != nil {
		prefs.AutoBackup = *update.AutoBackup
	}
	if update.BackupFrequencyHours != nil {
		prefs.BackupFrequencyHours = *update.BackupFrequencyHours
	}
	if update.Theme != nil {
		if theme := strings.TrimSpace(*update.Theme); theme != "" {
			prefs.Theme = theme
		}
	}
	if err := settings.Validate(prefs); err != nil {
		return settings.Settings{}, err
	}
	if now := s.now(); now.After(prefs.UpdatedAt) {
		prefs.UpdatedAt = now
	}
	if err := s.store.PutSettings(ctx, prefs); err != nil {
		return settings.Settings{}, storeErr(err, "", "save settings")
	}
	return prefs, nil
}

// SetCurrent selects a playable campaign and records it as recently used.
func (s *Service) SetCurrent(ctx context.Context, campaignID string) (_ campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return campaign.Campaign{}, err
	}
	ctx, span := s.startSpan(ctx, "SetCurrent", attribute.String("campaign.id", campaignID))
	defer func() { endSpan(span, err) }()

	c, err := s.load(ctx, campaignID)
	if err != nil {
		return campaign.Campaign{}, err
	}
	if !campaign.IsPlayable(c) {
		return campaign.Campaign{}, campaign.ErrNotPlayable
	}
	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.store.PutSettings(ctx, prefs.WithCurrentCampaign(c.ID, s.now())); err != nil {
		return campaign.Campaign{}, storeErr(err, c.ID, "save settings")
	}
	s.log.Info().Str("campaign_id", c.ID).Msg("current campaign selected")
	return c, nil
}

// Current returns the selected campaign. The boolean is false when nothing is
// selected or the selection no longer exists.
func (s *Service) Current(ctx context.Context) (_ campaign.Campaign, _ bool, err error) {
	if err := s.ready(); err != nil {
		return campaign.Campaign{}, false, err
	}
	ctx, span := s.startSpan(ctx, "Current")
	defer func() { endSpan(span, err) }()

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return campaign.Campaign{}, false, err
	}
	if prefs.CurrentCampaignID == "" {
		return campaign.Campaign{}, false, nil
	}
	c, err := s.store.GetCampaign(ctx, prefs.CurrentCampaignID)
	if errors.Is(err, storage.ErrNotFound) {
		return campaign.Campaign{}, false, nil
	}
	if err != nil {
		return campaign.Campaign{}, false, storeErr(err, prefs.CurrentCampaignID, "get campaign")
	}
	return c, true, nil
}

// ClearCurrent drops the selection and keeps the recents.
func (s *Service) ClearCurrent(ctx context.Context) (err error) {
	if err := s.ready(); err != nil {
		return err
	}
	ctx, span := s.startSpan(ctx, "ClearCurrent")
	defer func() { endSpan(span, err) }()

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}
	if err := s.store.PutSettings(ctx, prefs.WithoutCurrentCampaign(s.now())); err != nil {
		return storeErr(err, "", "save settings")
	}
	return nil
}

// Recent returns the recently selected campaigns that still exist, most
// recent first.
func (s *Service) Recent(ctx context.Context) (_ []campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ctx, span := s.startSpan(ctx, "Recent")
	defer func() { endSpan(span, err) }()

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]campaign.Campaign, 0, len(prefs.RecentCampaigns))
	for _, campaignID := range prefs.RecentCampaigns {
		c, err := s.store.GetCampaign(ctx, campaignID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, storeErr(err, campaignID, "get campaign")
		}
		out = append(out, c)
	}
	return out, nil
}
