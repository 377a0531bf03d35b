// Package storage defines persistence contracts for campaign service state.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/core/filter"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/settings"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a campaign with the same id already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// CampaignPage stores one page of campaigns ordered by id.
type CampaignPage struct {
	Campaigns     []campaign.Campaign
	NextPageToken string
}

// CampaignStore persists campaign records.
type CampaignStore interface {
	// CreateCampaign inserts c, returning ErrAlreadyExists when the id is taken.
	CreateCampaign(ctx context.Context, c campaign.Campaign) error
	// PutCampaign replaces an existing campaign, returning ErrNotFound when absent.
	PutCampaign(ctx context.Context, c campaign.Campaign) error
	GetCampaign(ctx context.Context, id string) (campaign.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
	// ListCampaigns returns one page of campaigns matching cond.
	ListCampaigns(ctx context.Context, cond filter.SQLCondition, pageSize int, pageToken string) (CampaignPage, error)
	// AllCampaigns returns every campaign ordered by id.
	AllCampaigns(ctx context.Context) ([]campaign.Campaign, error)
}

// SettingsStore persists the single settings record.
type SettingsStore interface {
	// GetSettings returns ErrNotFound until settings are first saved.
	GetSettings(ctx context.Context) (settings.Settings, error)
	PutSettings(ctx context.Context, s settings.Settings) error
}

// BackupStore copies the whole database.
type BackupStore interface {
	// Backup writes a copy stamped with at into dir and returns its path.
	Backup(ctx context.Context, dir string, at time.Time) (string, error)
}

// Store is the full campaign service persistence surface.
type Store interface {
	CampaignStore
	SettingsStore
	BackupStore
}
