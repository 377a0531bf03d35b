package campaign

import (
	"fmt"
	"time"

	"golang.org/x/text/message"

	"github.com/pipps42/dm-assistant-sub001/internal/platform/i18n"
)

// Formatter renders campaign display strings. The zero value formats keys
// without a catalog; use NewFormatter for plural-aware text.
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a Formatter that localizes through p.
func NewFormatter(p *message.Printer) Formatter {
	return Formatter{p: p}
}

func (f Formatter) sprintf(format string, args ...any) string {
	if f.p == nil {
		return fmt.Sprintf(format, args...)
	}
	return f.p.Sprintf(format, args...)
}

// text renders a catalog key that takes no arguments.
func (f Formatter) text(key string) string {
	if f.p == nil {
		return key
	}
	return f.p.Sprintf(key)
}

// StatusLabel returns the display label of s.
func (f Formatter) StatusLabel(s Status) string {
	if !s.Valid() {
		return s.String()
	}
	return f.text(statusLabels[s])
}

// DifficultyLabel returns the display label of d.
func (f Formatter) DifficultyLabel(d Difficulty) string {
	if !d.Valid() {
		return d.String()
	}
	return f.text(difficultyNames[d])
}

// SessionInfo renders "Session <current> of <total>".
func (f Formatter) SessionInfo(c Campaign) string {
	return f.sprintf("Session %d of %d", c.CurrentSession, c.Info.TotalSessions)
}

// Summary renders "<name> - <status label>".
func (f Formatter) Summary(c Campaign) string {
	return c.Name + " - " + f.StatusLabel(c.Status)
}

// ListItem is one display row of a campaign list.
type ListItem struct {
	ID          string
	Title       string
	Subtitle    string
	Status      string
	Difficulty  string
	Characters  string
	LastSession string
	Playable    bool
}

// ListItem renders the row shown for c in campaign lists.
func (f Formatter) ListItem(c Campaign) ListItem {
	last := f.text("No sessions")
	if c.LastSessionDate != nil {
		last = f.sprintf("Last session: %s", c.LastSessionDate.Format(time.DateOnly))
	}
	return ListItem{
		ID:          c.ID,
		Title:       c.Name,
		Subtitle:    f.SessionInfo(c),
		Status:      f.StatusLabel(c.Status),
		Difficulty:  f.DifficultyLabel(c.Info.Difficulty),
		Characters:  f.sprintf("%d active PCs", c.ActiveCharacters),
		LastSession: last,
		Playable:    IsPlayable(c),
	}
}

var english = NewFormatter(i18n.Printer(i18n.DefaultTag()))

// SessionInfo renders "Session <current> of <total>" in English.
func SessionInfo(c Campaign) string {
	return english.SessionInfo(c)
}

// FormatSummary renders "<name> - <status label>" in English.
func FormatSummary(c Campaign) string {
	return english.Summary(c)
}

// NewListItem renders the English list row for c.
func NewListItem(c Campaign) ListItem {
	return english.ListItem(c)
}
