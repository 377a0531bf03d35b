package settings

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

var (
	t0 = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func TestDefault(t *testing.T) {
	s := Default(t0)
	if !s.AutoBackup || s.BackupFrequencyHours != 24 || s.Theme != "dark" {
		t.Fatalf("Default() = %+v", s)
	}
	if s.CurrentCampaignID != "" || len(s.RecentCampaigns) != 0 || s.RecentCampaigns == nil {
		t.Fatalf("Default() selection = %+v", s)
	}
	if err := Validate(s); err != nil {
		t.Fatalf("Validate(Default) = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		ok   bool
	}{
		{name: "auto backup zero hours", s: Settings{AutoBackup: true}, ok: false},
		{name: "auto backup negative hours", s: Settings{AutoBackup: true, BackupFrequencyHours: -2}, ok: false},
		{name: "manual backup zero hours", s: Settings{}, ok: true},
		{name: "auto backup hourly", s: Settings{AutoBackup: true, BackupFrequencyHours: 1}, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.s)
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidBackupFrequency) {
				t.Fatalf("Validate() = %v, want ErrInvalidBackupFrequency", err)
			}
		})
	}
}

func TestWithCurrentCampaign(t *testing.T) {
	s := Default(t0)
	for i := 1; i <= 6; i++ {
		s = s.WithCurrentCampaign(fmt.Sprintf("c%d", i), t1)
	}
	s = s.WithCurrentCampaign("c4", t1)

	want := []string{"c4", "c6", "c5", "c3", "c2"}
	if s.CurrentCampaignID != "c4" {
		t.Fatalf("current = %q, want c4", s.CurrentCampaignID)
	}
	if len(s.RecentCampaigns) != len(want) {
		t.Fatalf("recents = %v, want %v", s.RecentCampaigns, want)
	}
	for i := range want {
		if s.RecentCampaigns[i] != want[i] {
			t.Fatalf("recents = %v, want %v", s.RecentCampaigns, want)
		}
	}
	if !s.UpdatedAt.Equal(t1) {
		t.Fatalf("updatedAt = %v, want %v", s.UpdatedAt, t1)
	}
}

func TestWithCurrentCampaignDoesNotMutate(t *testing.T) {
	base := Default(t0).WithCurrentCampaign("a", t0).WithCurrentCampaign("b", t0)
	_ = base.WithCurrentCampaign("a", t1)
	if base.RecentCampaigns[0] != "b" || base.RecentCampaigns[1] != "a" {
		t.Fatalf("base mutated: %v", base.RecentCampaigns)
	}
}

func TestForgetAndClear(t *testing.T) {
	s := Default(t0).WithCurrentCampaign("a", t0).WithCurrentCampaign("b", t0)

	cleared := s.WithoutCurrentCampaign(t1)
	if cleared.CurrentCampaignID != "" || len(cleared.RecentCampaigns) != 2 {
		t.Fatalf("cleared = %+v", cleared)
	}

	forgotten := s.Forget("b", t1)
	if forgotten.CurrentCampaignID != "" {
		t.Fatalf("current = %q, want cleared", forgotten.CurrentCampaignID)
	}
	if len(forgotten.RecentCampaigns) != 1 || forgotten.RecentCampaigns[0] != "a" {
		t.Fatalf("recents = %v", forgotten.RecentCampaigns)
	}

	other := s.Forget("a", t1)
	if other.CurrentCampaignID != "b" {
		t.Fatalf("forgetting another campaign cleared current: %+v", other)
	}
}

func TestBackupDue(t *testing.T) {
	last := t0
	tests := []struct {
		name string
		s    Settings
		now  time.Time
		want bool
	}{
		{name: "never backed up", s: Default(t0), now: t0, want: true},
		{name: "auto backup off", s: Settings{BackupFrequencyHours: 24}, now: t0, want: false},
		{name: "zero cadence", s: Settings{AutoBackup: true}, now: t0, want: false},
		{name: "before cadence", s: Settings{AutoBackup: true, BackupFrequencyHours: 2, LastBackupAt: &last}, now: t1, want: false},
		{name: "cadence reached", s: Settings{AutoBackup: true, BackupFrequencyHours: 1, LastBackupAt: &last}, now: t1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.BackupDue(tt.now); got != tt.want {
				t.Fatalf("BackupDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithBackup(t *testing.T) {
	s := Default(t0)
	got := s.WithBackup(t1)
	if got.LastBackupAt == nil || !got.LastBackupAt.Equal(t1) || !got.UpdatedAt.Equal(t1) {
		t.Fatalf("WithBackup() = %+v", got)
	}
	if s.LastBackupAt != nil {
		t.Fatal("WithBackup mutated the receiver")
	}
	later := got.WithCurrentCampaign("camp-1", t1)
	*later.LastBackupAt = t0
	if !got.LastBackupAt.Equal(t1) {
		t.Fatal("clone shares the backup timestamp")
	}
}
