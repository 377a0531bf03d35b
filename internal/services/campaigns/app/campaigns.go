package app

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/pagination"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/core/filter"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/insight"
)

const (
	defaultListPageSize = 20
	maxListPageSize     = 100
)

// ListRequest selects one page of campaigns.
type ListRequest struct {
	// Filter is an AIP-160 expression, e.g. `status = "ACTIVE"`.
	Filter    string
	PageSize  int
	PageToken string
}

// ListResponse is one page of campaign summaries.
type ListResponse struct {
	Campaigns     []campaign.Summary
	NextPageToken string
}

// Create validates req and stores a new Planning campaign.
func (s *Service) Create(ctx context.Context, req campaign.CreateRequest) (_ campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return campaign.Campaign{}, err
	}
	ctx, span := s.startSpan(ctx, "Create")
	defer func() { endSpan(span, err) }()

	created, err := campaign.New(req, s.clock, s.idGenerator)
	if err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.ensureNameUnique(ctx, created.Name, ""); err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.store.CreateCampaign(ctx, created); err != nil {
		return campaign.Campaign{}, storeErr(err, created.ID, "create campaign")
	}
	span.SetAttributes(attribute.String("campaign.id", created.ID))
	s.log.Info().Str("campaign_id", created.ID).Str("name", created.Name).Msg("campaign created")
	return created, nil
}

// Get returns one campaign.
func (s *Service) Get(ctx context.Context, campaignID string) (_ campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return campaign.Campaign{}, err
	}
	ctx, span := s.startSpan(ctx, "Get", attribute.String("campaign.id", campaignID))
	defer func() { endSpan(span, err) }()
	return s.load(ctx, campaignID)
}

func (s *Service) load(ctx context.Context, campaignID string) (campaign.Campaign, error) {
	campaignID, err := normalizeID(campaignID)
	if err != nil {
		return campaign.Campaign{}, err
	}
	c, err := s.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return campaign.Campaign{}, storeErr(err, campaignID, "get campaign")
	}
	return c, nil
}

// List returns one page of campaign summaries ordered by id.
func (s *Service) List(ctx context.Context, req ListRequest) (_ ListResponse, err error) {
	if err := s.ready(); err != nil {
		return ListResponse{}, err
	}
	ctx, span := s.startSpan(ctx, "List", attribute.String("filter", req.Filter))
	defer func() { endSpan(span, err) }()

	cond, err := filter.ParseCampaignFilter(req.Filter)
	if err != nil {
		return ListResponse{}, err
	}
	pageSize := pagination.ClampPageSize(req.PageSize, pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})
	page, err := s.store.ListCampaigns(ctx, cond, pageSize, req.PageToken)
	if err != nil {
		return ListResponse{}, storeErr(err, "", "list campaigns")
	}
	return ListResponse{
		Campaigns:     insight.Summaries(page.Campaigns),
		NextPageToken: page.NextPageToken,
	}, nil
}

// All returns every campaign in activity order.
func (s *Service) All(ctx context.Context) (_ []campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ctx, span := s.startSpan(ctx, "All")
	defer func() { endSpan(span, err) }()

	all, err := s.store.AllCampaigns(ctx)
	if err != nil {
		return nil, storeErr(err, "", "list all campaigns")
	}
	return insight.SortByActivity(all), nil
}

// Summaries returns every campaign projected for list views, in activity order.
func (s *Service) Summaries(ctx context.Context) ([]campaign.Summary, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return insight.Summaries(all), nil
}

// Search returns the campaigns whose text fields contain query, in activity
// order. A blank query returns every campaign.
func (s *Service) Search(ctx context.Context, query string) ([]campaign.Campaign, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return insight.Search(all, query), nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, campaignID string, patch campaign.UpdateRequest) (campaign.Campaign, error) {
	return s.mutate(ctx, "Update", campaignID, func(ctx context.Context, c campaign.Campaign) (campaign.Campaign, error) {
		next, err := campaign.Apply(c, patch, s.clock)
		if err != nil {
			return campaign.Campaign{}, err
		}
		if patch.Name != nil {
			if err := s.ensureNameUnique(ctx, next.Name, next.ID); err != nil {
				return campaign.Campaign{}, err
			}
		}
		return next, nil
	})
}

// StartSession opens the next session.
func (s *Service) StartSession(ctx context.Context, campaignID string) (campaign.Campaign, error) {
	return s.mutate(ctx, "StartSession", campaignID, func(_ context.Context, c campaign.Campaign) (campaign.Campaign, error) {
		return campaign.StartSession(c, s.clock)
	})
}

// UpdateStats replaces the character roll-ups and optional world counters.
func (s *Service) UpdateStats(ctx context.Context, campaignID string, update campaign.StatsUpdate) (campaign.Campaign, error) {
	return s.mutate(ctx, "UpdateStats", campaignID, func(_ context.Context, c campaign.Campaign) (campaign.Campaign, error) {
		return campaign.UpdateStats(c, update, s.clock)
	})
}

// Pause moves an Active campaign on hold.
func (s *Service) Pause(ctx context.Context, campaignID string) (campaign.Campaign, error) {
	return s.mutate(ctx, "Pause", campaignID, func(_ context.Context, c campaign.Campaign) (campaign.Campaign, error) {
		return campaign.Pause(c, s.clock)
	})
}

// Resume reactivates an OnHold campaign.
func (s *Service) Resume(ctx context.Context, campaignID string) (campaign.Campaign, error) {
	return s.mutate(ctx, "Resume", campaignID, func(_ context.Context, c campaign.Campaign) (campaign.Campaign, error) {
		return campaign.Resume(c, s.clock)
	})
}

// Complete marks a campaign as finished.
func (s *Service) Complete(ctx context.Context, campaignID string) (campaign.Campaign, error) {
	return s.mutate(ctx, "Complete", campaignID, func(_ context.Context, c campaign.Campaign) (campaign.Campaign, error) {
		return campaign.Complete(c, s.clock)
	})
}

// Archive retires a campaign.
func (s *Service) Archive(ctx context.Context, campaignID string) (campaign.Campaign, error) {
	return s.mutate(ctx, "Archive", campaignID, func(_ context.Context, c campaign.Campaign) (campaign.Campaign, error) {
		return campaign.Archive(c, s.clock)
	})
}

func (s *Service) mutate(
	ctx context.Context,
	operation string,
	campaignID string,
	fn func(context.Context, campaign.Campaign) (campaign.Campaign, error),
) (_ campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return campaign.Campaign{}, err
	}
	ctx, span := s.startSpan(ctx, operation, attribute.String("campaign.id", campaignID))
	defer func() { endSpan(span, err) }()

	current, err := s.load(ctx, campaignID)
	if err != nil {
		return campaign.Campaign{}, err
	}
	next, err := fn(ctx, current)
	if err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.store.PutCampaign(ctx, next); err != nil {
		return campaign.Campaign{}, storeErr(err, next.ID, "put campaign")
	}
	s.log.Info().
		Str("campaign_id", next.ID).
		Str("operation", operation).
		Str("status", next.Status.String()).
		Msg("campaign updated")
	return next, nil
}

// Delete removes a campaign and forgets it in the settings. Active campaigns
// that still have characters must be archived first.
func (s *Service) Delete(ctx context.Context, campaignID string) (err error) {
	if err := s.ready(); err != nil {
		return err
	}
	ctx, span := s.startSpan(ctx, "Delete", attribute.String("campaign.id", campaignID))
	defer func() { endSpan(span, err) }()

	c, err := s.load(ctx, campaignID)
	if err != nil {
		return err
	}
	if c.IsActive && c.Info.TotalCharacters > 0 {
		return ErrDeleteBlocked
	}
	if err := s.store.DeleteCampaign(ctx, c.ID); err != nil {
		return storeErr(err, c.ID, "delete campaign")
	}
	s.log.Info().Str("campaign_id", c.ID).Msg("campaign deleted")

	// Recent skips ids of deleted campaigns.
	if err := s.forget(ctx, c.ID); err != nil {
		s.log.Warn().Err(err).Str("campaign_id", c.ID).Msg("drop deleted campaign from settings")
	}
	return nil
}

func (s *Service) forget(ctx context.Context, campaignID string) error {
	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}
	if err := s.store.PutSettings(ctx, prefs.Forget(campaignID, s.now())); err != nil {
		return storeErr(err, campaignID, "save settings")
	}
	return nil
}

// Duplicate copies a campaign under a new name.
func (s *Service) Duplicate(ctx context.Context, campaignID, name string) (_ campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return campaign.Campaign{}, err
	}
	ctx, span := s.startSpan(ctx, "Duplicate", attribute.String("campaign.id", campaignID))
	defer func() { endSpan(span, err) }()

	src, err := s.load(ctx, campaignID)
	if err != nil {
		return campaign.Campaign{}, err
	}
	dup, err := campaign.Duplicate(src, name, s.clock, s.idGenerator)
	if err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.ensureNameUnique(ctx, dup.Name, ""); err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.store.CreateCampaign(ctx, dup); err != nil {
		return campaign.Campaign{}, storeErr(err, dup.ID, "create campaign")
	}
	s.log.Info().Str("campaign_id", dup.ID).Str("source_id", src.ID).Msg("campaign duplicated")
	return dup, nil
}

// Export returns the campaign as an indented JSON document.
func (s *Service) Export(ctx context.Context, campaignID string) (_ []byte, err error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ctx, span := s.startSpan(ctx, "Export", attribute.String("campaign.id", campaignID))
	defer func() { endSpan(span, err) }()

	c, err := s.load(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode campaign: %w", err)
	}
	return data, nil
}

// Import decodes an exported document and stores it under a fresh id.
func (s *Service) Import(ctx context.Context, data []byte) (_ campaign.Campaign, err error) {
	if err := s.ready(); err != nil {
		return campaign.Campaign{}, err
	}
	ctx, span := s.startSpan(ctx, "Import")
	defer func() { endSpan(span, err) }()

	var doc campaign.Campaign
	if err := json.Unmarshal(data, &doc); err != nil {
		return campaign.Campaign{}, apperrors.Wrap(apperrors.CodeCampaignInvalidImport, "decode campaign document: "+err.Error(), err)
	}
	imported, err := campaign.Import(doc, s.clock, s.idGenerator)
	if err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.ensureNameUnique(ctx, imported.Name, ""); err != nil {
		return campaign.Campaign{}, err
	}
	if err := s.store.CreateCampaign(ctx, imported); err != nil {
		return campaign.Campaign{}, storeErr(err, imported.ID, "create campaign")
	}
	s.log.Info().Str("campaign_id", imported.ID).Msg("campaign imported")
	return imported, nil
}

func (s *Service) ensureNameUnique(ctx context.Context, name, excludeID string) error {
	all, err := s.store.AllCampaigns(ctx)
	if err != nil {
		return storeErr(err, "", "list all campaigns")
	}
	if !insight.IsNameUnique(all, name, excludeID) {
		return nameTaken(name)
	}
	return nil
}
