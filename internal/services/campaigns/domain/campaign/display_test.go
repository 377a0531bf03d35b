package campaign

import (
	"testing"
	"time"

	"github.com/pipps42/dm-assistant-sub001/internal/platform/i18n"
)

func TestSessionInfoAndSummary(t *testing.T) {
	c := Campaign{Name: "Tomb of Annihilation", Status: StatusOnHold, CurrentSession: 3, Info: Info{TotalSessions: 10}}
	if got := SessionInfo(c); got != "Session 3 of 10" {
		t.Fatalf("SessionInfo() = %q", got)
	}
	if got := FormatSummary(c); got != "Tomb of Annihilation - On Hold" {
		t.Fatalf("FormatSummary() = %q", got)
	}
	it := NewFormatter(i18n.PrinterFor("it"))
	if got := it.Summary(c); got != "Tomb of Annihilation - In Pausa" {
		t.Fatalf("italian summary = %q", got)
	}
	if got := it.SessionInfo(c); got != "Sessione 3 di 10" {
		t.Fatalf("italian session info = %q", got)
	}
}

func TestListItem(t *testing.T) {
	last := time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)
	c := Campaign{
		ID:               "c1",
		Name:             "Storm King",
		Status:           StatusActive,
		IsActive:         true,
		ActiveCharacters: 1,
		LastSessionDate:  &last,
		Info:             Info{Difficulty: DifficultyDeadly},
	}
	item := NewListItem(c)
	if item.Characters != "1 active PC" || item.LastSession != "Last session: 2024-02-01" || !item.Playable {
		t.Fatalf("item = %+v", item)
	}
	if item.Difficulty != "Deadly" || item.Status != "Active" {
		t.Fatalf("labels = %q %q", item.Difficulty, item.Status)
	}

	c.LastSessionDate = nil
	c.ActiveCharacters = 3
	item = NewFormatter(i18n.PrinterFor("it")).ListItem(c)
	if item.LastSession != "Nessuna sessione" || item.Characters != "3 PG attivi" || item.Difficulty != "Letale" {
		t.Fatalf("italian item = %+v", item)
	}
}

func TestSummaryProjection(t *testing.T) {
	last := time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)
	c := Campaign{ID: "c1", Name: "n", Status: StatusActive, LastSessionDate: &last, Info: Info{Difficulty: DifficultyHard}}
	s := c.Summary()
	if s.ID != c.ID || s.Status != c.Status || s.Difficulty != DifficultyHard {
		t.Fatalf("summary = %+v", s)
	}
	*s.LastSessionDate = time.Time{}
	if !c.LastSessionDate.Equal(last) {
		t.Fatal("summary shares the last session pointer")
	}
}

func TestTemplates(t *testing.T) {
	for _, tmpl := range CreationTemplates() {
		if errs := ValidateCreate(tmpl.Request()); len(errs) > 0 {
			t.Fatalf("template %s invalid: %v", tmpl.Key, errs.Messages())
		}
	}
	if _, ok := TemplateByKey("strahd"); !ok {
		t.Fatal("expected strahd template")
	}
	settings := CommonSettings()
	settings[0] = "mutated"
	if CommonSettings()[0] != "Forgotten Realms" {
		t.Fatal("CommonSettings exposes internal slice")
	}
}
