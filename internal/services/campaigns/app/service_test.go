package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/logger"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/insight"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/settings"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage/sqlite"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("camp-%d", n), nil
	}
}

type fixture struct {
	svc   *Service
	clock *testClock
	logs  *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "campaigns.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	clock := &testClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	logs := &bytes.Buffer{}
	svc := NewService(store,
		WithClock(clock.Now),
		WithIDGenerator(sequentialIDs()),
		WithLogger(logger.NewWithWriter(logs, "campaigns")),
	)
	return fixture{svc: svc, clock: clock, logs: logs}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func createRequest(name string) campaign.CreateRequest {
	return campaign.CreateRequest{
		Name:        name,
		Description: "A campaign description",
		Setting:     "Forgotten Realms",
		Difficulty:  campaign.DifficultyNormal,
	}
}

func mustCreate(t *testing.T, f fixture, name string) campaign.Campaign {
	t.Helper()
	c, err := f.svc.Create(context.Background(), createRequest(name))
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return c
}

func assertCode(t *testing.T, err error, want apperrors.Code) {
	t.Helper()
	if got := apperrors.CodeOf(err); got != want {
		t.Fatalf("error code = %s, want %s (err %v)", got, want, err)
	}
}

func TestCreateAndGet(t *testing.T) {
	f := newFixture(t)
	created := mustCreate(t, f, "  Lost Mine  ")
	if created.ID != "camp-1" || created.Name != "Lost Mine" {
		t.Fatalf("created = %+v", created)
	}
	if created.Status != campaign.StatusPlanning {
		t.Fatalf("status = %s, want Planning", created.Status)
	}

	got, err := f.svc.Get(context.Background(), " camp-1 ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Lost Mine" || !got.CreatedAt.Equal(f.clock.now) {
		t.Fatalf("got = %+v", got)
	}
	if !bytes.Contains(f.logs.Bytes(), []byte(`"campaign_id":"camp-1"`)) {
		t.Fatalf("expected create log line, got %s", f.logs.String())
	}
}

func TestCreateValidationFailure(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), campaign.CreateRequest{Name: "x"})
	assertCode(t, err, apperrors.CodeCampaignValidationFailed)

	var verrs campaign.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors in chain, got %v", err)
	}
	if !verrs.Has(apperrors.CodeCampaignDescriptionEmpty) || !verrs.Has(apperrors.CodeCampaignSettingEmpty) {
		t.Fatalf("validation errors = %v", verrs)
	}
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	f := newFixture(t)
	mustCreate(t, f, "Lost Mine")
	_, err := f.svc.Create(context.Background(), createRequest("lost mine "))
	assertCode(t, err, apperrors.CodeCampaignNameTaken)
	if !errors.Is(err, ErrNameTaken) {
		t.Fatalf("err = %v, want ErrNameTaken", err)
	}
}

func TestGetErrors(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Get(context.Background(), "  ")
	assertCode(t, err, apperrors.CodeCampaignEmptyID)

	_, err = f.svc.Get(context.Background(), "missing")
	assertCode(t, err, apperrors.CodeNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err.Error() != "campaign not found: missing" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	mustCreate(t, f, "Lost Mine")
	other := mustCreate(t, f, "Tomb of Annihilation")

	f.clock.Advance(time.Hour)
	updated, err := f.svc.Update(context.Background(), other.ID, campaign.UpdateRequest{
		Description: strPtr("Jungle death curse"),
		PlayerCount: intPtr(5),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != "Jungle death curse" || updated.PlayerCount != 5 {
		t.Fatalf("updated = %+v", updated)
	}
	if !updated.UpdatedAt.Equal(f.clock.now) {
		t.Fatalf("updated at = %v, want %v", updated.UpdatedAt, f.clock.now)
	}

	_, err = f.svc.Update(context.Background(), other.ID, campaign.UpdateRequest{Name: strPtr("LOST MINE")})
	assertCode(t, err, apperrors.CodeCampaignNameTaken)

	// Renaming to its own name is not a conflict.
	if _, err := f.svc.Update(context.Background(), other.ID, campaign.UpdateRequest{Name: strPtr("tomb of annihilation")}); err != nil {
		t.Fatalf("rename to own name: %v", err)
	}

	_, err = f.svc.Update(context.Background(), other.ID, campaign.UpdateRequest{})
	assertCode(t, err, apperrors.CodeCampaignEmptyUpdate)
}

func TestLifecycleFlow(t *testing.T) {
	f := newFixture(t)
	c := mustCreate(t, f, "Lost Mine")
	ctx := context.Background()

	if _, err := f.svc.UpdateStats(ctx, c.ID, campaign.StatsUpdate{ActiveCharacters: 4, TotalCharacters: 4, AverageLevel: 2}); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	started, err := f.svc.StartSession(ctx, c.ID)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if started.Status != campaign.StatusActive || started.CurrentSession != 1 || started.LastSessionDate == nil {
		t.Fatalf("started = %+v", started)
	}

	paused, err := f.svc.Pause(ctx, c.ID)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if paused.Status != campaign.StatusOnHold {
		t.Fatalf("paused status = %s", paused.Status)
	}
	_, err = f.svc.StartSession(ctx, c.ID)
	assertCode(t, err, apperrors.CodeCampaignStatusDisallowsOp)

	if _, err := f.svc.Resume(ctx, c.ID); err != nil {
		t.Fatalf("resume: %v", err)
	}
	completed, err := f.svc.Complete(ctx, c.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != campaign.StatusCompleted || completed.IsActive {
		t.Fatalf("completed = %+v", completed)
	}
	archived, err := f.svc.Archive(ctx, c.ID)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived.Status != campaign.StatusArchived {
		t.Fatalf("archived status = %s", archived.Status)
	}

	stored, err := f.svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != campaign.StatusArchived || stored.Info.TotalSessions != 1 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestStartSessionRequiresPlayable(t *testing.T) {
	f := newFixture(t)
	c := mustCreate(t, f, "Lost Mine")
	if _, err := f.svc.Update(context.Background(), c.ID, campaign.UpdateRequest{IsActive: boolPtr(false)}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	_, err := f.svc.StartSession(context.Background(), c.ID)
	assertCode(t, err, apperrors.CodeCampaignNotPlayable)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := mustCreate(t, f, "Lost Mine")
	if _, err := f.svc.UpdateStats(ctx, c.ID, campaign.StatsUpdate{ActiveCharacters: 2, TotalCharacters: 3, AverageLevel: 1}); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if _, err := f.svc.SetCurrent(ctx, c.ID); err != nil {
		t.Fatalf("set current: %v", err)
	}

	err := f.svc.Delete(ctx, c.ID)
	assertCode(t, err, apperrors.CodeCampaignDeleteBlocked)

	if _, err := f.svc.Archive(ctx, c.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := f.svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete archived: %v", err)
	}
	_, err = f.svc.Get(ctx, c.ID)
	assertCode(t, err, apperrors.CodeNotFound)

	prefs, err := f.svc.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if prefs.CurrentCampaignID != "" || len(prefs.RecentCampaigns) != 0 {
		t.Fatalf("settings still reference deleted campaign: %+v", prefs)
	}
}

func TestDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	src := mustCreate(t, f, "Lost Mine")
	if _, err := f.svc.UpdateStats(ctx, src.ID, campaign.StatsUpdate{ActiveCharacters: 4, TotalCharacters: 4, AverageLevel: 3, TotalNPCs: intPtr(12)}); err != nil {
		t.Fatalf("update stats: %v", err)
	}

	dup, err := f.svc.Duplicate(ctx, src.ID, "Lost Mine II")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.ID == src.ID || dup.Name != "Lost Mine II" {
		t.Fatalf("dup = %+v", dup)
	}
	if dup.Info.TotalNPCs != 12 || dup.ActiveCharacters != 0 {
		t.Fatalf("dup counters = %+v", dup)
	}

	_, err = f.svc.Duplicate(ctx, src.ID, "lost mine")
	assertCode(t, err, apperrors.CodeCampaignNameTaken)
}

func TestExportImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	src := mustCreate(t, f, "Lost Mine")

	data, err := f.svc.Export(ctx, src.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if doc["status"] != "Planning" || doc["name"] != "Lost Mine" {
		t.Fatalf("export document = %v", doc)
	}

	// Same name is taken until the original is renamed.
	_, err = f.svc.Import(ctx, data)
	assertCode(t, err, apperrors.CodeCampaignNameTaken)

	if _, err := f.svc.Update(ctx, src.ID, campaign.UpdateRequest{Name: strPtr("Lost Mine (old)")}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	imported, err := f.svc.Import(ctx, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.ID == src.ID || imported.Name != "Lost Mine" {
		t.Fatalf("imported = %+v", imported)
	}
	all, err := f.svc.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d campaigns, want 2", len(all))
	}
}

func TestImportRejectsMalformedDocument(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Import(context.Background(), []byte(`{"name": 12}`))
	assertCode(t, err, apperrors.CodeCampaignInvalidImport)

	_, err = f.svc.Import(context.Background(), []byte(`{"name":"X","description":"d","setting":"s","status":"RETIRED"}`))
	assertCode(t, err, apperrors.CodeCampaignInvalidImport)
}

func TestListWithFilterAndPaging(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		mustCreate(t, f, fmt.Sprintf("Campaign %d", i))
	}
	if _, err := f.svc.UpdateStats(ctx, "camp-2", campaign.StatsUpdate{ActiveCharacters: 1, TotalCharacters: 1, AverageLevel: 1}); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if _, err := f.svc.StartSession(ctx, "camp-2"); err != nil {
		t.Fatalf("start session: %v", err)
	}

	resp, err := f.svc.List(ctx, ListRequest{Filter: `status = "PLANNING"`, PageSize: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Campaigns) != 1 || resp.Campaigns[0].ID != "camp-1" || resp.NextPageToken != "camp-1" {
		t.Fatalf("first page = %+v token %q", resp.Campaigns, resp.NextPageToken)
	}
	resp, err = f.svc.List(ctx, ListRequest{Filter: `status = "PLANNING"`, PageSize: 1, PageToken: resp.NextPageToken})
	if err != nil {
		t.Fatalf("list second page: %v", err)
	}
	if len(resp.Campaigns) != 1 || resp.Campaigns[0].ID != "camp-3" || resp.NextPageToken != "" {
		t.Fatalf("second page = %+v token %q", resp.Campaigns, resp.NextPageToken)
	}

	_, err = f.svc.List(ctx, ListRequest{Filter: `owner = "me"`})
	assertCode(t, err, apperrors.CodeCampaignInvalidFilter)
}

func TestSummariesInActivityOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mustCreate(t, f, "Planning One")
	active := mustCreate(t, f, "Active One")
	if _, err := f.svc.UpdateStats(ctx, active.ID, campaign.StatsUpdate{ActiveCharacters: 1, TotalCharacters: 1, AverageLevel: 1}); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if _, err := f.svc.StartSession(ctx, active.ID); err != nil {
		t.Fatalf("start session: %v", err)
	}

	summaries, err := f.svc.Summaries(ctx)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 || summaries[0].ID != active.ID {
		t.Fatalf("summaries = %+v, want active first", summaries)
	}
}

func TestCurrentAndRecent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, ok, err := f.svc.Current(ctx); err != nil || ok {
		t.Fatalf("current before selection = %v, %v", ok, err)
	}

	a := mustCreate(t, f, "A")
	b := mustCreate(t, f, "B")
	for _, campaignID := range []string{a.ID, b.ID, a.ID} {
		f.clock.Advance(time.Minute)
		if _, err := f.svc.SetCurrent(ctx, campaignID); err != nil {
			t.Fatalf("set current %s: %v", campaignID, err)
		}
	}

	current, ok, err := f.svc.Current(ctx)
	if err != nil || !ok || current.ID != a.ID {
		t.Fatalf("current = %+v, %v, %v", current, ok, err)
	}
	recent, err := f.svc.Recent(ctx)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != a.ID || recent[1].ID != b.ID {
		t.Fatalf("recent = %+v", recent)
	}

	if err := f.svc.ClearCurrent(ctx); err != nil {
		t.Fatalf("clear current: %v", err)
	}
	if _, ok, err := f.svc.Current(ctx); err != nil || ok {
		t.Fatalf("current after clear = %v, %v", ok, err)
	}
	recent, err = f.svc.Recent(ctx)
	if err != nil || len(recent) != 2 {
		t.Fatalf("recent after clear = %+v, %v", recent, err)
	}
}

func TestSetCurrentRejectsArchived(t *testing.T) {
	f := newFixture(t)
	c := mustCreate(t, f, "A")
	if _, err := f.svc.Archive(context.Background(), c.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	_, err := f.svc.SetCurrent(context.Background(), c.ID)
	assertCode(t, err, apperrors.CodeCampaignNotPlayable)
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	prefs, err := f.svc.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if prefs.Theme != settings.DefaultTheme || !prefs.AutoBackup {
		t.Fatalf("default settings = %+v", prefs)
	}

	updated, err := f.svc.UpdateSettings(ctx, SettingsUpdate{Theme: strPtr("light"), BackupFrequencyHours: intPtr(12)})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if updated.Theme != "light" || updated.BackupFrequencyHours != 12 {
		t.Fatalf("updated = %+v", updated)
	}

	_, err = f.svc.UpdateSettings(ctx, SettingsUpdate{BackupFrequencyHours: intPtr(0)})
	assertCode(t, err, apperrors.CodeSettingsInvalidBackupPeriod)

	if _, err := f.svc.UpdateSettings(ctx, SettingsUpdate{AutoBackup: boolPtr(false), BackupFrequencyHours: intPtr(0)}); err != nil {
		t.Fatalf("disable backups: %v", err)
	}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if empty.Stats.TotalCampaigns != 0 || len(empty.Suggestions) != 1 || empty.Suggestions[0].Type != insight.SuggestCreate {
		t.Fatalf("empty dashboard = %+v", empty)
	}

	mustCreate(t, f, "A")
	f.clock.Advance(8 * 24 * time.Hour)
	b := mustCreate(t, f, "B")

	board, err := f.svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if board.Stats.TotalCampaigns != 2 || len(board.Campaigns) != 2 {
		t.Fatalf("dashboard stats = %+v", board.Stats)
	}
	if len(board.RecentlyUpdated) != 1 || board.RecentlyUpdated[0].ID != b.ID {
		t.Fatalf("recently updated = %+v", board.RecentlyUpdated)
	}
	if len(board.NeedingAttention) != 2 {
		t.Fatalf("needing attention = %d, want 2", len(board.NeedingAttention))
	}
}

func TestNilStore(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Get(context.Background(), "x"); err == nil {
		t.Fatal("expected error for unconfigured store")
	}
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	mustCreate(t, f, "Lost Mine")
	mustCreate(t, f, "Tomb of Annihilation")

	found, err := f.svc.Search(context.Background(), "TOMB")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Tomb of Annihilation" {
		t.Fatalf("found = %+v", found)
	}
}

type failingSettingsStore struct {
	storage.Store
}

func (failingSettingsStore) PutSettings(context.Context, settings.Settings) error {
	return errors.New("disk full")
}

func TestDeleteSucceedsWhenSettingsCleanupFails(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "campaigns.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	logs := &bytes.Buffer{}
	svc := NewService(failingSettingsStore{Store: store},
		WithIDGenerator(sequentialIDs()),
		WithLogger(logger.NewWithWriter(logs, "campaigns")),
	)
	c, err := svc.Create(ctx, createRequest("Lost Mine"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete = %v, want nil", err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete = %v, want ErrNotFound", err)
	}
	if !bytes.Contains(logs.Bytes(), []byte("drop deleted campaign from settings")) {
		t.Fatalf("expected cleanup warning, got %s", logs.String())
	}
}

func TestBackupRecordsLastBackup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mustCreate(t, f, "Lost Mine")

	dir := filepath.Join(t.TempDir(), "backups")
	path, err := f.svc.Backup(ctx, dir)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("backup path = %q, want it under %q", path, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat backup: %v", err)
	}

	prefs, err := f.svc.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if prefs.LastBackupAt == nil || !prefs.LastBackupAt.Equal(f.clock.now) {
		t.Fatalf("last backup = %v, want %v", prefs.LastBackupAt, f.clock.now)
	}
	if !bytes.Contains(f.logs.Bytes(), []byte("campaigns backed up")) {
		t.Fatalf("expected backup log line, got %s", f.logs.String())
	}
}

func TestAutoBackupHonorsCadence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "backups")

	steps := []struct {
		name    string
		advance time.Duration
		wantRan bool
	}{
		{name: "first run", wantRan: true},
		{name: "same instant", wantRan: false},
		{name: "before cadence", advance: 23 * time.Hour, wantRan: false},
		{name: "cadence reached", advance: time.Hour, wantRan: true},
	}
	for _, step := range steps {
		f.clock.Advance(step.advance)
		path, ran, err := f.svc.AutoBackup(ctx, dir)
		if err != nil {
			t.Fatalf("%s: auto backup: %v", step.name, err)
		}
		if ran != step.wantRan {
			t.Fatalf("%s: ran = %v, want %v", step.name, ran, step.wantRan)
		}
		if ran && path == "" {
			t.Fatalf("%s: expected backup path", step.name)
		}
	}

	if _, err := f.svc.UpdateSettings(ctx, SettingsUpdate{AutoBackup: boolPtr(false)}); err != nil {
		t.Fatalf("disable auto backup: %v", err)
	}
	f.clock.Advance(48 * time.Hour)
	if _, ran, err := f.svc.AutoBackup(ctx, dir); err != nil || ran {
		t.Fatalf("auto backup disabled: ran = %v, err = %v", ran, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read backup dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("backups = %d, want 2", len(entries))
	}
}
