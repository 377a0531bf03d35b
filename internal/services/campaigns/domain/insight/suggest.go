package insight

import (
	"golang.org/x/text/message"

	"github.com/pipps42/dm-assistant-sub001/internal/platform/i18n"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
)

// ActiveCampaignSoftLimit is the active-campaign count above which archiving
// is suggested.
const ActiveCampaignSoftLimit = 3

// SuggestionType groups suggestions by the action they propose.
type SuggestionType string

const (
	SuggestCreate   SuggestionType = "create"
	SuggestContinue SuggestionType = "continue"
	SuggestArchive  SuggestionType = "archive"
	SuggestComplete SuggestionType = "complete"
)

// Priority ranks a suggestion for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is a recommendation computed from a collection of campaigns.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    Priority       `json:"priority"`

	titleKey string
	descKey  string
	descArgs []any
}

// english renders the default description with the plural catalog entries.
var english = i18n.Printer(i18n.DefaultTag())

func newSuggestion(typ SuggestionType, priority Priority, title, desc string, args ...any) Suggestion {
	return Suggestion{
		Type:        typ,
		Title:       title,
		Description: english.Sprintf(desc, args...),
		Priority:    priority,
		titleKey:    title,
		descKey:     desc,
		descArgs:    args,
	}
}

// Localize returns a copy of s with title and description rendered by p.
func (s Suggestion) Localize(p *message.Printer) Suggestion {
	if p == nil || s.titleKey == "" {
		return s
	}
	s.Title = p.Sprintf(s.titleKey)
	s.Description = p.Sprintf(s.descKey, s.descArgs...)
	return s
}

// LocalizeSuggestions renders every suggestion through p.
func LocalizeSuggestions(p *message.Printer, suggestions []Suggestion) []Suggestion {
	out := make([]Suggestion, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Localize(p)
	}
	return out
}

// Suggest evaluates the suggestion rules in a fixed order. An empty
// collection yields a single suggestion to create a first campaign.
func Suggest(cs []campaign.Campaign) []Suggestion {
	if len(cs) == 0 {
		return []Suggestion{
			newSuggestion(SuggestCreate, PriorityHigh,
				"Create your first campaign",
				"Start by creating a new campaign to organize your sessions"),
		}
	}

	active := len(Active(cs))
	onHold := len(FilterByStatus(cs, campaign.StatusOnHold))
	planning := len(FilterByStatus(cs, campaign.StatusPlanning))

	var out []Suggestion
	if active > ActiveCampaignSoftLimit {
		out = append(out, newSuggestion(SuggestArchive, PriorityMedium,
			"Too many active campaigns",
			"Consider archiving some campaigns to stay organized"))
	}
	if onHold > 0 {
		out = append(out, newSuggestion(SuggestContinue, PriorityMedium,
			"Campaigns on hold to resume",
			"You have %d campaigns on hold that you could resume", onHold))
	}
	if planning > 0 {
		out = append(out, newSuggestion(SuggestContinue, PriorityHigh,
			"Campaigns to start",
			"You have %d campaigns in planning ready to begin", planning))
	}
	if active == 0 {
		out = append(out, newSuggestion(SuggestCreate, PriorityHigh,
			"No active campaigns",
			"Create a new campaign or reactivate an existing one"))
	}
	return out
}
