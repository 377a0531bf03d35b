package campaign

import (
	"fmt"
	"time"

	"golang.org/x/text/message"
)

// StaleSessionAfter is the number of whole days after the last session
// beyond which a campaign is flagged as stale.
const StaleSessionAfter = 30

// HealthStatus is the triage tier of a campaign.
type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthWarning   HealthStatus = "warning"
	HealthAttention HealthStatus = "attention"
)

// Health is the result of Diagnose. Issues[i] pairs with Suggestions[i].
type Health struct {
	Status      HealthStatus `json:"status"`
	Issues      []string     `json:"issues"`
	Suggestions []string     `json:"suggestions"`

	issues      []note
	suggestions []note
}

type note struct {
	format string
	args   []any
}

func (n note) english() string {
	return fmt.Sprintf(n.format, n.args...)
}

// Localize returns a copy of h with issues and suggestions rendered by p.
func (h Health) Localize(p *message.Printer) Health {
	out := Health{Status: h.Status, issues: h.issues, suggestions: h.suggestions}
	out.Issues = renderNotes(p, h.issues)
	out.Suggestions = renderNotes(p, h.suggestions)
	return out
}

func renderNotes(p *message.Printer, notes []note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		if p == nil {
			out[i] = n.english()
			continue
		}
		out[i] = p.Sprintf(n.format, n.args...)
	}
	return out
}

func (h *Health) add(issue, suggestion note) {
	h.issues = append(h.issues, issue)
	h.suggestions = append(h.suggestions, suggestion)
	h.Issues = append(h.Issues, issue.english())
	h.Suggestions = append(h.Suggestions, suggestion.english())
}

// Diagnose runs the data-completeness and recency checks against c.
// now is the instant used to age the last session.
func Diagnose(c Campaign, now time.Time) Health {
	h := Health{Issues: []string{}, Suggestions: []string{}}
	if c.ActiveCharacters == 0 {
		h.add(note{format: "No active characters"}, note{format: "Add characters to start the campaign"})
	}
	if c.Info.TotalQuests == 0 {
		h.add(note{format: "No quests defined"}, note{format: "Create some quests to guide the story"})
	}
	if c.Info.TotalNPCs == 0 {
		h.add(note{format: "No NPCs created"}, note{format: "Add NPCs to enrich the world"})
	}
	if c.LastSessionDate != nil && DaysSince(*c.LastSessionDate, now) > StaleSessionAfter {
		h.add(
			note{format: "Last session was over %d days ago", args: []any{StaleSessionAfter}},
			note{format: "Consider scheduling a new session"},
		)
	}

	switch n := len(h.Issues); {
	case n == 0:
		h.Status = HealthHealthy
	case n <= 2:
		h.Status = HealthWarning
	default:
		h.Status = HealthAttention
	}
	return h
}

// DaysSince returns the whole days elapsed from t to now, rounded down.
// The result is negative when t is after now.
func DaysSince(t, now time.Time) int {
	elapsed := now.Sub(t)
	days := elapsed / (24 * time.Hour)
	if elapsed < 0 && elapsed%(24*time.Hour) != 0 {
		days--
	}
	return int(days)
}
