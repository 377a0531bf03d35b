package insight

import (
	"testing"

	"github.com/pipps42/dm-assistant-sub001/internal/platform/i18n"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
)

func TestCalculateStatsEmpty(t *testing.T) {
	got := CalculateStats(nil)
	want := Stats{MostPopularSetting: "N/A"}
	if got != want {
		t.Fatalf("CalculateStats(nil) = %+v, want %+v", got, want)
	}
}

func TestCalculateStats(t *testing.T) {
	cs := []campaign.Campaign{
		{Setting: "Eberron", IsActive: true, Status: campaign.StatusActive, AverageLevel: 4, Info: campaign.Info{TotalSessions: 5, TotalCharacters: 4}},
		{Setting: "Ravenloft", Status: campaign.StatusCompleted, AverageLevel: 0, Info: campaign.Info{TotalSessions: 20, TotalCharacters: 5}},
		{Setting: "Ravenloft", IsActive: true, Status: campaign.StatusPlanning, AverageLevel: 7, Info: campaign.Info{TotalSessions: 0, TotalCharacters: 3}},
		{Setting: "Eberron", Status: campaign.StatusCompleted, AverageLevel: 8, Info: campaign.Info{TotalSessions: 2}},
	}
	got := CalculateStats(cs)
	want := Stats{
		TotalCampaigns:             4,
		ActiveCampaigns:            2,
		CompletedCampaigns:         2,
		TotalCharacters:            12,
		TotalSessions:              27,
		AverageSessionsPerCampaign: 7,
		MostPopularSetting:         "Eberron",
		AverageCampaignLevel:       6,
	}
	if got != want {
		t.Fatalf("CalculateStats() = %+v, want %+v", got, want)
	}
}

func TestMostPopularSettingPrefersHighestCount(t *testing.T) {
	cs := []campaign.Campaign{{Setting: "A"}, {Setting: "B"}, {Setting: "B"}}
	if got := CalculateStats(cs).MostPopularSetting; got != "B" {
		t.Fatalf("MostPopularSetting = %q, want B", got)
	}
}

func TestSuggestEmpty(t *testing.T) {
	got := Suggest(nil)
	if len(got) != 1 {
		t.Fatalf("Suggest(nil) = %+v, want one suggestion", got)
	}
	if got[0].Type != SuggestCreate || got[0].Priority != PriorityHigh {
		t.Fatalf("Suggest(nil)[0] = %+v", got[0])
	}
	if got[0].Title != "Create your first campaign" {
		t.Fatalf("title = %q", got[0].Title)
	}
}

func TestSuggestRuleOrder(t *testing.T) {
	active := campaign.Campaign{IsActive: true, Status: campaign.StatusActive}
	cs := []campaign.Campaign{
		active, active, active, active,
		{Status: campaign.StatusOnHold},
		{Status: campaign.StatusOnHold},
		{Status: campaign.StatusPlanning, IsActive: true},
	}
	got := Suggest(cs)
	if len(got) != 3 {
		t.Fatalf("Suggest() = %+v, want 3 suggestions", got)
	}
	wantTypes := []SuggestionType{SuggestArchive, SuggestContinue, SuggestContinue}
	wantPriorities := []Priority{PriorityMedium, PriorityMedium, PriorityHigh}
	for i := range got {
		if got[i].Type != wantTypes[i] || got[i].Priority != wantPriorities[i] {
			t.Fatalf("suggestion %d = %+v", i, got[i])
		}
	}
	if got[1].Description != "You have 2 campaigns on hold that you could resume" {
		t.Fatalf("on hold description = %q", got[1].Description)
	}
	if got[2].Description != "You have 1 campaign in planning ready to begin" {
		t.Fatalf("planning description = %q", got[2].Description)
	}
}

func TestSuggestNoActive(t *testing.T) {
	got := Suggest([]campaign.Campaign{{Status: campaign.StatusCompleted}})
	if len(got) != 1 || got[0].Type != SuggestCreate || got[0].Title != "No active campaigns" {
		t.Fatalf("Suggest() = %+v", got)
	}
}

func TestSuggestionLocalize(t *testing.T) {
	cs := []campaign.Campaign{{Status: campaign.StatusOnHold, IsActive: true}}
	got := LocalizeSuggestions(i18n.PrinterFor("it"), Suggest(cs))
	if len(got) != 1 {
		t.Fatalf("suggestions = %+v", got)
	}
	if got[0].Title != "Campagne in pausa da riprendere" {
		t.Fatalf("title = %q", got[0].Title)
	}
	if got[0].Description != "Hai 1 campagna in pausa che potresti riprendere" {
		t.Fatalf("description = %q", got[0].Description)
	}
	if en := Suggest(cs)[0]; en.Description != "You have 1 campaign on hold that you could resume" {
		t.Fatalf("english plural = %q", en.Description)
	}
	en := Suggest(cs)[0].Localize(i18n.PrinterFor("en"))
	if en.Description != "You have 1 campaign on hold that you could resume" {
		t.Fatalf("localized english plural = %q", en.Description)
	}
}
