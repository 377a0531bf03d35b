package campaign

import (
	"math/rand"
	"testing"
	"time"
)

func TestProgressOf(t *testing.T) {
	tests := []struct {
		name string
		c    Campaign
		want Progress
	}{
		{name: "zero denominators", c: Campaign{}, want: Progress{}},
		{name: "half the quests", c: Campaign{Info: Info{TotalQuests: 4, CompletedQuests: 2}}, want: Progress{QuestCompletion: 50}},
		{name: "sessions", c: Campaign{CurrentSession: 1, Info: Info{TotalSessions: 3}}, want: Progress{SessionProgress: 33}},
		{name: "level one", c: Campaign{AverageLevel: 1}, want: Progress{}},
		{name: "level twenty", c: Campaign{AverageLevel: 20}, want: Progress{CharacterGrowth: 100}},
		{name: "level ten and a half", c: Campaign{AverageLevel: 10.5}, want: Progress{CharacterGrowth: 50}},
		{name: "negative counters clamp", c: Campaign{CurrentSession: -3, Info: Info{TotalSessions: 2, TotalQuests: 2, CompletedQuests: -1}}, want: Progress{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressOf(tt.c); got != tt.want {
				t.Fatalf("ProgressOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProgressNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		total := rng.Intn(1_000_000)
		quests := rng.Intn(1_000_000)
		c := Campaign{
			CurrentSession: rng.Intn(total + 1),
			AverageLevel:   rng.Float64() * 20,
			Info: Info{
				TotalSessions:   total,
				TotalQuests:     quests,
				CompletedQuests: rng.Intn(quests + 1),
			},
		}
		p := ProgressOf(c)
		if p.QuestCompletion < 0 || p.QuestCompletion > 100 ||
			p.SessionProgress < 0 || p.SessionProgress > 100 ||
			p.CharacterGrowth < 0 || p.CharacterGrowth > 100 {
			t.Fatalf("ProgressOf(%+v) = %+v out of range", c, p)
		}
	}
}

func TestIsPlayable(t *testing.T) {
	tests := []struct {
		status   Status
		isActive bool
		want     bool
	}{
		{StatusPlanning, true, true},
		{StatusActive, true, true},
		{StatusActive, false, false},
		{StatusOnHold, true, false},
		{StatusCompleted, true, false},
		{StatusArchived, true, false},
	}
	for _, tt := range tests {
		c := Campaign{Status: tt.status, IsActive: tt.isActive}
		if got := IsPlayable(c); got != tt.want {
			t.Fatalf("IsPlayable(%s, %v) = %v, want %v", tt.status, tt.isActive, got, tt.want)
		}
	}
}

func TestCanModify(t *testing.T) {
	for _, s := range Statuses() {
		want := s != StatusCompleted && s != StatusArchived
		if got := CanModify(Campaign{Status: s}); got != want {
			t.Fatalf("CanModify(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		t    time.Time
		want int
	}{
		{now, 0},
		{now.Add(-23 * time.Hour), 0},
		{now.Add(-31 * 24 * time.Hour), 31},
		{now.Add(-(30*24 + 23) * time.Hour), 30},
		{now.Add(time.Hour), -1},
	}
	for _, tt := range tests {
		if got := DaysSince(tt.t, now); got != tt.want {
			t.Fatalf("DaysSince(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}
