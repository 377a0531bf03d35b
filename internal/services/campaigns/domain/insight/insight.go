// Package insight computes views over collections of campaigns: ordering,
// filtering, statistics and suggestions. Inputs are never mutated.
package insight

import (
	"slices"
	"strings"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
)

// SortByActivity returns a new slice ordered by: active before inactive,
// then most recent last session (campaigns with one before those without),
// then newest creation. Equal campaigns keep their input order.
func SortByActivity(cs []campaign.Campaign) []campaign.Campaign {
	out := slices.Clone(cs)
	slices.SortStableFunc(out, compareActivity)
	return out
}

func compareActivity(a, b campaign.Campaign) int {
	if a.IsActive != b.IsActive {
		if a.IsActive {
			return -1
		}
		return 1
	}
	switch {
	case a.LastSessionDate != nil && b.LastSessionDate != nil:
		if c := b.LastSessionDate.Compare(*a.LastSessionDate); c != 0 {
			return c
		}
	case a.LastSessionDate != nil:
		return -1
	case b.LastSessionDate != nil:
		return 1
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

// FilterByStatus returns the campaigns in status s.
func FilterByStatus(cs []campaign.Campaign, s campaign.Status) []campaign.Campaign {
	return filter(cs, func(c campaign.Campaign) bool { return c.Status == s })
}

// FilterByDifficulty returns the campaigns at difficulty d.
func FilterByDifficulty(cs []campaign.Campaign, d campaign.Difficulty) []campaign.Campaign {
	return filter(cs, func(c campaign.Campaign) bool { return c.Info.Difficulty == d })
}

// Active returns the campaigns flagged active.
func Active(cs []campaign.Campaign) []campaign.Campaign {
	return filter(cs, func(c campaign.Campaign) bool { return c.IsActive })
}

// Search matches query case-insensitively against name, description,
// setting and DM notes. A blank query returns cs unchanged.
func Search(cs []campaign.Campaign, query string) []campaign.Campaign {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return cs
	}
	return filter(cs, func(c campaign.Campaign) bool {
		return strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) ||
			strings.Contains(strings.ToLower(c.Setting), needle) ||
			strings.Contains(strings.ToLower(c.DMNotes), needle)
	})
}

// IsNameUnique reports whether no campaign other than excludeID already
// uses name, compared trimmed and case-insensitively.
func IsNameUnique(cs []campaign.Campaign, name, excludeID string) bool {
	key := nameKey(name)
	for _, c := range cs {
		if c.ID == excludeID && excludeID != "" {
			continue
		}
		if nameKey(c.Name) == key {
			return false
		}
	}
	return true
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Summaries projects every campaign for list views.
func Summaries(cs []campaign.Campaign) []campaign.Summary {
	out := make([]campaign.Summary, len(cs))
	for i, c := range cs {
		out[i] = c.Summary()
	}
	return out
}

func filter(cs []campaign.Campaign, keep func(campaign.Campaign) bool) []campaign.Campaign {
	out := make([]campaign.Campaign, 0, len(cs))
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
