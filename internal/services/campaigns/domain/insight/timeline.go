package insight

import (
	"math"
	"slices"
	"time"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
)

const (
	// RecentWindow bounds how far back RecentlyUpdated looks.
	RecentWindow = 7 * 24 * time.Hour
	// ProjectedCampaignSessions is the assumed length of a campaign when
	// projecting an end date. It is a heuristic, not derived from data.
	ProjectedCampaignSessions = 25

	week = 7 * 24 * time.Hour
)

// NeedingAttention returns the campaigns whose diagnosis reports any issue.
func NeedingAttention(cs []campaign.Campaign, now time.Time) []campaign.Campaign {
	return filter(cs, func(c campaign.Campaign) bool {
		h := campaign.Diagnose(c, now)
		return h.Status == campaign.HealthAttention || len(h.Issues) > 0
	})
}

// RecentlyUpdated returns campaigns updated strictly after now minus
// RecentWindow, most recent first.
func RecentlyUpdated(cs []campaign.Campaign, now time.Time) []campaign.Campaign {
	cutoff := now.Add(-RecentWindow)
	out := filter(cs, func(c campaign.Campaign) bool { return c.UpdatedAt.After(cutoff) })
	slices.SortStableFunc(out, func(a, b campaign.Campaign) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// Duration is the pacing estimate of a campaign.
type Duration struct {
	WeeksActive int `json:"weeksActive"`
	// SessionsPerWeek is rounded to two decimals.
	SessionsPerWeek  float64    `json:"sessionsPerWeek"`
	ProjectedEndDate *time.Time `json:"projectedEndDate,omitempty"`
}

// EstimateDuration measures the session pace since creation and projects an
// end date assuming ProjectedCampaignSessions total sessions.
func EstimateDuration(c campaign.Campaign, now time.Time) Duration {
	weeks := 1
	if elapsed := now.Sub(c.CreatedAt); elapsed > 0 {
		weeks = max(1, int(math.Ceil(float64(elapsed)/float64(week))))
	}

	var perWeek float64
	if c.Info.TotalSessions > 0 {
		perWeek = float64(c.Info.TotalSessions) / float64(weeks)
	}

	d := Duration{
		WeeksActive:     weeks,
		SessionsPerWeek: math.Round(perWeek*100) / 100,
	}
	if perWeek > 0 {
		remaining := max(0, ProjectedCampaignSessions-c.Info.TotalSessions)
		ahead := time.Duration(math.MaxInt64)
		if span := float64(remaining) / perWeek * float64(week); span < float64(math.MaxInt64) {
			ahead = time.Duration(span)
		}
		end := now.Add(ahead)
		d.ProjectedEndDate = &end
	}
	return d
}
