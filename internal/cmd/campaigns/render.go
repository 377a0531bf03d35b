package campaigns

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/app"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/insight"
)

var healthLabels = map[campaign.HealthStatus]string{
	campaign.HealthHealthy:   "Healthy",
	campaign.HealthWarning:   "Warning",
	campaign.HealthAttention: "Needs attention",
}

// printf writes one localized line.
func (r *runner) printf(key string, args ...any) {
	fmt.Fprintln(r.out, r.p.Sprintf(key, args...))
}

func (r *runner) tabwriter() *tabwriter.Writer {
	return tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
}

func (r *runner) table(cs []campaign.Campaign) {
	if len(cs) == 0 {
		r.printf("No campaigns")
		return
	}
	tw := r.tabwriter()
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		"ID", r.p.Sprintf("Name"), r.p.Sprintf("Status"), r.p.Sprintf("Difficulty"),
		r.p.Sprintf("Characters"), r.p.Sprintf("Last session"))
	for _, c := range cs {
		item := r.format.ListItem(c)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Title, item.Status, item.Difficulty, item.Characters, item.LastSession)
	}
	_ = tw.Flush()
}

func (r *runner) summaryTable(summaries []campaign.Summary) {
	cs := make([]campaign.Campaign, len(summaries))
	for i, s := range summaries {
		cs[i] = campaign.Campaign{
			ID:               s.ID,
			Name:             s.Name,
			Description:      s.Description,
			Setting:          s.Setting,
			Status:           s.Status,
			IsActive:         s.IsActive,
			CurrentSession:   s.CurrentSession,
			Info:             campaign.Info{Difficulty: s.Difficulty},
			PlayerCount:      s.PlayerCount,
			ActiveCharacters: s.ActiveCharacters,
			AverageLevel:     s.AverageLevel,
			LastSessionDate:  s.LastSessionDate,
			UpdatedAt:        s.UpdatedAt,
		}
	}
	r.table(cs)
}

func (r *runner) detail(c campaign.Campaign) {
	now := r.now().UTC()
	r.printf("%s", r.format.Summary(c))
	fmt.Fprintln(r.out, c.ID)
	if c.Description != "" {
		fmt.Fprintln(r.out, c.Description)
	}
	r.printf("Setting: %s", c.Setting)
	r.printf("Difficulty: %s", r.format.DifficultyLabel(c.Info.Difficulty))
	r.printf("Players: %d", c.PlayerCount)
	fmt.Fprintln(r.out, r.format.SessionInfo(c))

	progress := campaign.ProgressOf(c)
	r.printf("Quest completion: %d%%", progress.QuestCompletion)
	r.printf("Session progress: %d%%", progress.SessionProgress)
	r.printf("Character growth: %d%%", progress.CharacterGrowth)

	pace := insight.EstimateDuration(c, now)
	r.printf("Pace: %.2f sessions per week over %d weeks", pace.SessionsPerWeek, pace.WeeksActive)
	if pace.ProjectedEndDate != nil {
		r.printf("Projected end: %s", pace.ProjectedEndDate.Format(time.DateOnly))
	}

	health := campaign.Diagnose(c, now).Localize(r.p)
	r.printf("Health: %s", r.p.Sprintf(healthLabels[health.Status]))
	for i, issue := range health.Issues {
		fmt.Fprintf(r.out, "  - %s: %s\n", issue, health.Suggestions[i])
	}
}

func (r *runner) board(board app.Dashboard) {
	stats := board.Stats
	r.printf("Campaigns: %d (%d active, %d completed)", stats.TotalCampaigns, stats.ActiveCampaigns, stats.CompletedCampaigns)
	r.printf("Characters: %d, sessions: %d", stats.TotalCharacters, stats.TotalSessions)
	r.printf("Most popular setting: %s", stats.MostPopularSetting)
	r.printf("Average level: %d", stats.AverageCampaignLevel)

	if len(board.Suggestions) > 0 {
		fmt.Fprintln(r.out)
		r.printf("Suggestions:")
		for _, s := range insight.LocalizeSuggestions(r.p, board.Suggestions) {
			fmt.Fprintf(r.out, "  [%s] %s: %s\n", s.Priority, s.Title, s.Description)
		}
	}
	if len(board.NeedingAttention) > 0 {
		fmt.Fprintln(r.out)
		r.printf("Needing attention:")
		r.summaryTable(board.NeedingAttention)
	}
	if len(board.RecentlyUpdated) > 0 {
		fmt.Fprintln(r.out)
		r.printf("Recently updated:")
		r.summaryTable(board.RecentlyUpdated)
	}
}
