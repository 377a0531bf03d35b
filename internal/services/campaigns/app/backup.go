package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/settings"
)

// Backup writes a copy of the database into dir and records the time in the
// settings. It returns the path of the new file.
func (s *Service) Backup(ctx context.Context, dir string) (_ string, err error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	ctx, span := s.startSpan(ctx, "Backup", attribute.String("backup.dir", dir))
	defer func() { endSpan(span, err) }()

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return "", err
	}
	return s.backup(ctx, dir, prefs)
}

// AutoBackup runs a backup when auto backup is on and the configured number
// of hours has passed since the last one. ran is false when nothing was due.
func (s *Service) AutoBackup(ctx context.Context, dir string) (path string, ran bool, err error) {
	if err := s.ready(); err != nil {
		return "", false, err
	}
	ctx, span := s.startSpan(ctx, "AutoBackup", attribute.String("backup.dir", dir))
	defer func() { endSpan(span, err) }()

	prefs, err := s.loadSettings(ctx)
	if err != nil {
		return "", false, err
	}
	if !prefs.BackupDue(s.now()) {
		return "", false, nil
	}
	path, err = s.backup(ctx, dir, prefs)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

func (s *Service) backup(ctx context.Context, dir string, prefs settings.Settings) (string, error) {
	now := s.now()
	path, err := s.store.Backup(ctx, dir, now)
	if err != nil {
		return "", fmt.Errorf("backup campaigns: %w", err)
	}
	if err := s.store.PutSettings(ctx, prefs.WithBackup(now)); err != nil {
		return "", storeErr(err, "", "save settings")
	}
	s.log.Info().Str("path", path).Msg("campaigns backed up")
	return path, nil
}
