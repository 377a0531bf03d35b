package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/app"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
)

var commandNames = []string{
	"create", "list", "show", "update", "stats", "start-session",
	"pause", "resume", "complete", "archive", "delete", "duplicate",
	"dashboard", "export", "import", "use", "settings", "templates",
	"backup",
}

type runner struct {
	svc       *app.Service
	out       io.Writer
	errOut    io.Writer
	p         *message.Printer
	format    campaign.Formatter
	json      bool
	now       func() time.Time
	backupDir string
}

func (r *runner) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "create":
		return r.create(ctx, args)
	case "list":
		return r.list(ctx, args)
	case "show":
		return r.show(ctx, args)
	case "update":
		return r.update(ctx, args)
	case "stats":
		return r.stats(ctx, args)
	case "start-session":
		return r.transition(ctx, command, args, r.svc.StartSession)
	case "pause":
		return r.transition(ctx, command, args, r.svc.Pause)
	case "resume":
		return r.transition(ctx, command, args, r.svc.Resume)
	case "complete":
		return r.transition(ctx, command, args, r.svc.Complete)
	case "archive":
		return r.transition(ctx, command, args, r.svc.Archive)
	case "delete":
		return r.delete(ctx, args)
	case "duplicate":
		return r.duplicate(ctx, args)
	case "dashboard":
		return r.dashboard(ctx, args)
	case "export":
		return r.export(ctx, args)
	case "import":
		return r.importFile(ctx, args)
	case "use":
		return r.use(ctx, args)
	case "settings":
		return r.settings(ctx, args)
	case "templates":
		return r.templates(args)
	case "backup":
		return r.backup(ctx, args)
	default:
		return fmt.Errorf("unknown command %q, expected one of: %s", command, strings.Join(commandNames, ", "))
	}
}

func (r *runner) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	return fs
}

// parseWithID accepts the campaign id before or after the flags.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	var campaignID string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		campaignID, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if campaignID == "" {
		campaignID = fs.Arg(0)
	}
	if strings.TrimSpace(campaignID) == "" {
		return "", fmt.Errorf("%s: campaign id is required", fs.Name())
	}
	return campaignID, nil
}

func parseDifficulty(value string) (campaign.Difficulty, error) {
	d, ok := campaign.ParseDifficulty(value)
	if !ok {
		return 0, fmt.Errorf("unknown difficulty %q", value)
	}
	return d, nil
}

func (r *runner) create(ctx context.Context, args []string) error {
	fs := r.flagSet("create")
	templateKey := fs.String("template", "", "start from a creation template (see the templates command)")
	name := fs.String("name", "", "campaign name")
	description := fs.String("description", "", "campaign description")
	setting := fs.String("setting", "", "campaign setting")
	notes := fs.String("notes", "", "private DM notes")
	difficulty := fs.String("difficulty", "Normal", "Casual, Normal, Hard or Deadly")
	players := fs.Int("players", 0, "expected player count (default 4)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req campaign.CreateRequest
	if *templateKey != "" {
		tmpl, ok := campaign.TemplateByKey(*templateKey)
		if !ok {
			return fmt.Errorf("unknown template %q", *templateKey)
		}
		req = tmpl.Request()
	}
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = *name
		case "description":
			req.Description = *description
		case "setting":
			req.Setting = *setting
		case "notes":
			req.DMNotes = *notes
		case "players":
			req.PlayerCount = players
		case "difficulty":
			req.Difficulty, parseErr = parseDifficulty(*difficulty)
		}
	})
	if parseErr != nil {
		return parseErr
	}
	if *templateKey == "" && !isSet(fs, "difficulty") {
		req.Difficulty = campaign.DifficultyNormal
	}

	c, err := r.svc.Create(ctx, req)
	if err != nil {
		return err
	}
	return r.emit(c, func() {
		r.printf("Created campaign %s (%s)", c.Name, c.ID)
	})
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func (r *runner) list(ctx context.Context, args []string) error {
	fs := r.flagSet("list")
	filterExpr := fs.String("filter", "", `AIP-160 filter, e.g. status = "Active"`)
	pageSize := fs.Int("page-size", 0, "campaigns per page (default 20)")
	pageToken := fs.String("page-token", "", "token from a previous page")
	search := fs.String("search", "", "case-insensitive text search over every campaign")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *search != "" {
		found, err := r.svc.Search(ctx, *search)
		if err != nil {
			return err
		}
		return r.emit(found, func() { r.table(found) })
	}

	resp, err := r.svc.List(ctx, app.ListRequest{Filter: *filterExpr, PageSize: *pageSize, PageToken: *pageToken})
	if err != nil {
		return err
	}
	return r.emit(resp, func() {
		r.summaryTable(resp.Campaigns)
		if resp.NextPageToken != "" {
			r.printf("Next page token: %s", resp.NextPageToken)
		}
	})
}

func (r *runner) show(ctx context.Context, args []string) error {
	campaignID, err := parseWithID(r.flagSet("show"), args)
	if err != nil {
		return err
	}
	c, err := r.svc.Get(ctx, campaignID)
	if err != nil {
		return err
	}
	return r.emit(c, func() { r.detail(c) })
}

func (r *runner) update(ctx context.Context, args []string) error {
	fs := r.flagSet("update")
	name := fs.String("name", "", "new campaign name")
	description := fs.String("description", "", "new description")
	setting := fs.String("setting", "", "new setting")
	notes := fs.String("notes", "", "new DM notes")
	difficulty := fs.String("difficulty", "", "Casual, Normal, Hard or Deadly")
	players := fs.Int("players", 0, "expected player count")
	active := fs.Bool("active", true, "whether the campaign is flagged active")
	campaignID, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	var (
		patch    campaign.UpdateRequest
		parseErr error
	)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "description":
			patch.Description = description
		case "setting":
			patch.Setting = setting
		case "notes":
			patch.DMNotes = notes
		case "players":
			patch.PlayerCount = players
		case "active":
			patch.IsActive = active
		case "difficulty":
			var d campaign.Difficulty
			d, parseErr = parseDifficulty(*difficulty)
			patch.Difficulty = &d
		}
	})
	if parseErr != nil {
		return parseErr
	}

	c, err := r.svc.Update(ctx, campaignID, patch)
	if err != nil {
		return err
	}
	return r.emit(c, func() { r.printf("Updated campaign %s", c.Name) })
}

func (r *runner) stats(ctx context.Context, args []string) error {
	fs := r.flagSet("stats")
	activeChars := fs.Int("active", 0, "active characters (unchanged when omitted)")
	totalChars := fs.Int("total", 0, "total characters (unchanged when omitted)")
	level := fs.Float64("level", 0, "average character level (unchanged when omitted)")
	npcs := fs.Int("npcs", 0, "total NPCs")
	locations := fs.Int("locations", 0, "total locations")
	quests := fs.Int("quests", 0, "total quests")
	completed := fs.Int("completed", 0, "completed quests")
	encounters := fs.Int("encounters", 0, "total encounters")
	campaignID, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	current, err := r.svc.Get(ctx, campaignID)
	if err != nil {
		return err
	}

	// Omitted character flags keep the stored values.
	update := campaign.StatsUpdate{
		ActiveCharacters: current.ActiveCharacters,
		TotalCharacters:  current.Info.TotalCharacters,
		AverageLevel:     max(current.AverageLevel, campaign.MinLevel),
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "active":
			update.ActiveCharacters = *activeChars
		case "total":
			update.TotalCharacters = *totalChars
		case "level":
			update.AverageLevel = *level
		case "npcs":
			update.TotalNPCs = npcs
		case "locations":
			update.TotalLocations = locations
		case "quests":
			update.TotalQuests = quests
		case "completed":
			update.CompletedQuests = completed
		case "encounters":
			update.TotalEncounters = encounters
		}
	})

	c, err := r.svc.UpdateStats(ctx, campaignID, update)
	if err != nil {
		return err
	}
	return r.emit(c, func() { r.printf("Updated campaign %s", c.Name) })
}

func (r *runner) transition(ctx context.Context, command string, args []string, op func(context.Context, string) (campaign.Campaign, error)) error {
	campaignID, err := parseWithID(r.flagSet(command), args)
	if err != nil {
		return err
	}
	c, err := op(ctx, campaignID)
	if err != nil {
		return err
	}
	return r.emit(c, func() {
		if command == "start-session" {
			r.printf("Started session %d of %s", c.CurrentSession, c.Name)
			return
		}
		r.printf("%s is now %s", c.Name, r.format.StatusLabel(c.Status))
	})
}

func (r *runner) delete(ctx context.Context, args []string) error {
	campaignID, err := parseWithID(r.flagSet("delete"), args)
	if err != nil {
		return err
	}
	if err := r.svc.Delete(ctx, campaignID); err != nil {
		return err
	}
	return r.emit(map[string]string{"deleted": campaignID}, func() {
		r.printf("Deleted campaign %s", campaignID)
	})
}

func (r *runner) duplicate(ctx context.Context, args []string) error {
	fs := r.flagSet("duplicate")
	name := fs.String("name", "", "name of the copy")
	campaignID, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	src, err := r.svc.Get(ctx, campaignID)
	if err != nil {
		return err
	}
	dup, err := r.svc.Duplicate(ctx, campaignID, *name)
	if err != nil {
		return err
	}
	return r.emit(dup, func() {
		r.printf("Duplicated %s as %s (%s)", src.Name, dup.Name, dup.ID)
	})
}

func (r *runner) dashboard(ctx context.Context, args []string) error {
	if err := r.flagSet("dashboard").Parse(args); err != nil {
		return err
	}
	board, err := r.svc.Dashboard(ctx)
	if err != nil {
		return err
	}
	return r.emit(board, func() { r.board(board) })
}

func (r *runner) export(ctx context.Context, args []string) error {
	fs := r.flagSet("export")
	output := fs.String("o", "", "write the document to this file instead of stdout")
	campaignID, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	data, err := r.svc.Export(ctx, campaignID)
	if err != nil {
		return err
	}
	if *output == "" {
		_, err := fmt.Fprintln(r.out, string(data))
		return err
	}
	if err := os.WriteFile(*output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func (r *runner) importFile(ctx context.Context, args []string) error {
	fs := r.flagSet("import")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path := fs.Arg(0)
	if path == "" {
		return errors.New("import: file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}
	c, err := r.svc.Import(ctx, data)
	if err != nil {
		return err
	}
	return r.emit(c, func() { r.printf("Imported campaign %s (%s)", c.Name, c.ID) })
}

func (r *runner) use(ctx context.Context, args []string) error {
	fs := r.flagSet("use")
	clearCurrent := fs.Bool("clear", false, "clear the current campaign")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *clearCurrent:
		if err := r.svc.ClearCurrent(ctx); err != nil {
			return err
		}
		return r.emit(map[string]bool{"cleared": true}, func() { r.printf("Current campaign cleared") })
	case fs.Arg(0) != "":
		c, err := r.svc.SetCurrent(ctx, fs.Arg(0))
		if err != nil {
			return err
		}
		return r.emit(c, func() { r.printf("Current campaign: %s", r.format.Summary(c)) })
	}

	current, ok, err := r.svc.Current(ctx)
	if err != nil {
		return err
	}
	recent, err := r.svc.Recent(ctx)
	if err != nil {
		return err
	}
	view := struct {
		Current *campaign.Campaign  `json:"current,omitempty"`
		Recent  []campaign.Campaign `json:"recent"`
	}{Recent: recent}
	if ok {
		view.Current = &current
	}
	return r.emit(view, func() {
		if ok {
			r.printf("Current campaign: %s", r.format.Summary(current))
		} else {
			r.printf("No current campaign")
		}
		if len(recent) > 0 {
			r.printf("Recent campaigns:")
			r.table(recent)
		}
	})
}

func (r *runner) settings(ctx context.Context, args []string) error {
	fs := r.flagSet("settings")
	theme := fs.String("theme", "", "interface theme")
	backupHours := fs.Int("backup-hours", 0, "hours between automatic backups")
	autoBackup := fs.Bool("auto-backup", true, "enable automatic backups")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update app.SettingsUpdate
	changed := false
	fs.Visit(func(f *flag.Flag) {
		changed = true
		switch f.Name {
		case "theme":
			update.Theme = theme
		case "backup-hours":
			update.BackupFrequencyHours = backupHours
		case "auto-backup":
			update.AutoBackup = autoBackup
		}
	})

	prefs, err := r.svc.Settings(ctx)
	if err == nil && changed {
		prefs, err = r.svc.UpdateSettings(ctx, update)
	}
	if err != nil {
		return err
	}
	return r.emit(prefs, func() {
		r.printf("Theme: %s", prefs.Theme)
		if prefs.AutoBackup {
			r.printf("Auto backup: every %d hours", prefs.BackupFrequencyHours)
		} else {
			r.printf("Auto backup: off")
		}
		if prefs.LastBackupAt != nil {
			r.printf("Last backup: %s", prefs.LastBackupAt.Format(time.DateTime))
		}
	})
}

func (r *runner) backup(ctx context.Context, args []string) error {
	fs := r.flagSet("backup")
	dir := fs.String("dir", r.backupDir, "directory that receives the backup file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := r.svc.Backup(ctx, *dir)
	if err != nil {
		return err
	}
	return r.emit(map[string]string{"path": path}, func() {
		r.printf("Campaigns backed up to %s", path)
	})
}

func (r *runner) templates(args []string) error {
	if err := r.flagSet("templates").Parse(args); err != nil {
		return err
	}
	templates := campaign.CreationTemplates()
	return r.emit(templates, func() {
		tw := r.tabwriter()
		for _, t := range templates {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Key, t.Name, t.Setting, r.format.DifficultyLabel(t.Difficulty))
		}
		_ = tw.Flush()
	})
}

// emit writes v as JSON in JSON mode, otherwise runs text.
func (r *runner) emit(v any, text func()) error {
	if !r.json {
		text()
		return nil
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// localize renders validation failures in the configured language.
func (r *runner) localize(err error) error {
	var verrs campaign.ValidationErrors
	if errors.As(err, &verrs) {
		return errors.New(strings.Join(verrs.Localize(r.p), "; "))
	}
	return err
}
