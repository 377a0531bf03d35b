// Package campaigns parses the campaigns command line and runs one subcommand
// against the local campaign database.
package campaigns

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/pipps42/dm-assistant-sub001/internal/platform/cmd"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/i18n"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/logger"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/app"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage/sqlite"
)

// Config holds campaigns command configuration.
type Config struct {
	DBPath   string `env:"DB_PATH" envDefault:"data/campaigns.db"`
	Locale   string `env:"LOCALE" envDefault:"en"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	JSON     bool   `env:"JSON"`

	// BackupDir defaults to a backups directory next to the database.
	BackupDir string `env:"BACKUP_DIR"`

	// Command is the subcommand name and Args its arguments.
	Command string
	Args    []string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the campaigns sqlite database")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "output language (en, it)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print JSON instead of text")
	fs.StringVar(&cfg.BackupDir, "backup-dir", cfg.BackupDir, "directory for database backups (default <db dir>/backups)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("a command is required: %s", strings.Join(commandNames, ", "))
	}
	cfg.Command = rest[0]
	cfg.Args = rest[1:]
	return cfg, nil
}

// Run opens the database and executes the configured subcommand.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCampaigns, func(ctx context.Context) error {
		return run(ctx, cfg, out, errOut, time.Now)
	})
}

func run(ctx context.Context, cfg Config, out, errOut io.Writer, clock func() time.Time) error {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("database path is required")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	log := logger.NewWithWriter(errOut, entrypoint.ServiceCampaigns).Level(logger.Level(cfg.LogLevel))
	svc := app.NewService(store, app.WithClock(clock), app.WithLogger(log))
	backupDir := cfg.BackupDir
	if strings.TrimSpace(backupDir) == "" {
		backupDir = filepath.Join(filepath.Dir(cfg.DBPath), "backups")
	}
	if cfg.Command != "backup" {
		path, ran, err := svc.AutoBackup(ctx, backupDir)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("automatic backup failed")
		case ran:
			log.Info().Str("path", path).Msg("automatic backup written")
		}
	}

	p := i18n.PrinterFor(cfg.Locale)
	r := &runner{
		svc:       svc,
		out:       out,
		errOut:    errOut,
		p:         p,
		format:    campaign.NewFormatter(p),
		json:      cfg.JSON,
		now:       clock,
		backupDir: backupDir,
	}
	return r.localize(r.dispatch(ctx, cfg.Command, cfg.Args))
}
