package campaign

import "math"

// Progress holds whole-number percentages derived from a campaign.
type Progress struct {
	QuestCompletion int `json:"questCompletion"`
	SessionProgress int `json:"sessionProgress"`
	CharacterGrowth int `json:"characterGrowth"`
}

// ProgressOf computes quest, session and character-growth percentages.
// A zero denominator yields 0; level 1 is 0% growth and level 20 is 100%.
func ProgressOf(c Campaign) Progress {
	var growth int
	if c.AverageLevel > MinLevel {
		growth = percent(c.AverageLevel-MinLevel, MaxLevel-MinLevel)
	}
	return Progress{
		QuestCompletion: percent(float64(c.Info.CompletedQuests), float64(c.Info.TotalQuests)),
		SessionProgress: percent(float64(c.CurrentSession), float64(c.Info.TotalSessions)),
		CharacterGrowth: growth,
	}
}

func percent(part, whole float64) int {
	if whole <= 0 || part <= 0 || math.IsNaN(part) || math.IsInf(part, 0) {
		return 0
	}
	return int(math.Round(100 * part / whole))
}

// IsPlayable reports whether sessions can be run: the campaign is flagged
// active and is either Active or Planning.
func IsPlayable(c Campaign) bool {
	return c.IsActive && (c.Status == StatusActive || c.Status == StatusPlanning)
}

// CanModify reports whether the campaign still accepts edits.
func CanModify(c Campaign) bool {
	return c.Status != StatusCompleted && c.Status != StatusArchived
}
