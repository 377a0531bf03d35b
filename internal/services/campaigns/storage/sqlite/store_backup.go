package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage"
)

// backupTimeLayout stamps backup file names in UTC.
const backupTimeLayout = "20060102T150405Z"

// BackupFileName returns the file name of a backup written at.
func BackupFileName(at time.Time) string {
	return "campaigns-" + at.UTC().Format(backupTimeLayout) + ".db"
}

// Backup writes a consistent copy of the database into dir with VACUUM INTO
// and returns the path of the new file.
func (s *Store) Backup(ctx context.Context, dir string, at time.Time) (string, error) {
	if err := s.ready(ctx); err != nil {
		return "", err
	}
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("backup directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	target := filepath.Join(filepath.Clean(dir), BackupFileName(at))
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("backup %s: %w", target, storage.ErrAlreadyExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat backup: %w", err)
	}

	if _, err := s.sqlDB.ExecContext(ctx, `VACUUM INTO ?`, target); err != nil {
		return "", fmt.Errorf("backup database: %w", err)
	}
	return target, nil
}
