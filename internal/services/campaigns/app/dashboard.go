package app

import (
	"context"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/insight"
)

// Dashboard is the overview computed over every campaign.
type Dashboard struct {
	Stats            insight.Stats        `json:"stats"`
	Suggestions      []insight.Suggestion `json:"suggestions"`
	NeedingAttention []campaign.Summary   `json:"needingAttention"`
	RecentlyUpdated  []campaign.Summary   `json:"recentlyUpdated"`
	// Campaigns is every campaign in activity order.
	Campaigns []campaign.Summary `json:"campaigns"`
}

// Dashboard aggregates every campaign at the service clock's instant.
func (s *Service) Dashboard(ctx context.Context) (_ Dashboard, err error) {
	if err := s.ready(); err != nil {
		return Dashboard{}, err
	}
	ctx, span := s.startSpan(ctx, "Dashboard")
	defer func() { endSpan(span, err) }()

	all, err := s.store.AllCampaigns(ctx)
	if err != nil {
		return Dashboard{}, storeErr(err, "", "list all campaigns")
	}
	now := s.now()
	return Dashboard{
		Stats:            insight.CalculateStats(all),
		Suggestions:      insight.Suggest(all),
		NeedingAttention: insight.Summaries(insight.NeedingAttention(all, now)),
		RecentlyUpdated:  insight.Summaries(insight.RecentlyUpdated(all, now)),
		Campaigns:        insight.Summaries(insight.SortByActivity(all)),
	}, nil
}
