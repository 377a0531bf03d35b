package insight

import (
	"math"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
)

// NoSetting is reported as the most popular setting of an empty collection.
const NoSetting = "N/A"

// Stats aggregates a collection of campaigns.
type Stats struct {
	TotalCampaigns             int    `json:"totalCampaigns"`
	ActiveCampaigns            int    `json:"activeCampaigns"`
	CompletedCampaigns         int    `json:"completedCampaigns"`
	TotalCharacters            int    `json:"totalCharacters"`
	TotalSessions              int    `json:"totalSessions"`
	AverageSessionsPerCampaign int    `json:"averageSessionsPerCampaign"`
	MostPopularSetting         string `json:"mostPopularSetting"`
	AverageCampaignLevel       int    `json:"averageCampaignLevel"`
}

// CalculateStats totals cs. Completed campaigns are counted from the
// top-level status. Campaigns with an unset level do not count toward the
// average level.
func CalculateStats(cs []campaign.Campaign) Stats {
	stats := Stats{
		TotalCampaigns:     len(cs),
		MostPopularSetting: NoSetting,
	}
	var (
		levelSum   float64
		levelCount int
	)
	for _, c := range cs {
		if c.IsActive {
			stats.ActiveCampaigns++
		}
		if c.Status == campaign.StatusCompleted {
			stats.CompletedCampaigns++
		}
		stats.TotalCharacters += c.Info.TotalCharacters
		stats.TotalSessions += c.Info.TotalSessions
		if c.AverageLevel > 0 {
			levelSum += c.AverageLevel
			levelCount++
		}
	}
	if len(cs) > 0 {
		stats.AverageSessionsPerCampaign = int(math.Round(float64(stats.TotalSessions) / float64(len(cs))))
		stats.MostPopularSetting = mostPopularSetting(cs)
	}
	if levelCount > 0 {
		stats.AverageCampaignLevel = int(math.Round(levelSum / float64(levelCount)))
	}
	return stats
}

// mostPopularSetting returns the most frequent setting; ties go to the one
// seen first.
func mostPopularSetting(cs []campaign.Campaign) string {
	counts := make(map[string]int, len(cs))
	var order []string
	for _, c := range cs {
		if _, seen := counts[c.Setting]; !seen {
			order = append(order, c.Setting)
		}
		counts[c.Setting]++
	}
	best, bestCount := NoSetting, 0
	for _, setting := range order {
		if counts[setting] > bestCount {
			best, bestCount = setting, counts[setting]
		}
	}
	return best
}
