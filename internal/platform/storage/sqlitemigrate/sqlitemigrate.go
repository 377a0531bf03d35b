// Package sqlitemigrate applies embedded SQL migrations to SQLite databases.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const (
	migrationTable = "schema_migrations"
	upMarker       = "-- +migrate Up"
	downMarker     = "-- +migrate Down"
)

// Migration is one embedded SQL file.
type Migration struct {
	// Name is the key recorded in schema_migrations.
	Name string
	Up   string
	Down string
}

// Load reads every .sql file under root, sorted by file name.
func Load(migrationFS fs.FS, root string) ([]Migration, error) {
	if migrationFS == nil {
		return nil, errors.New("migration fs is required")
	}
	readRoot := strings.TrimSpace(root)
	if readRoot == "" {
		readRoot = "."
	}
	entries, err := fs.ReadDir(migrationFS, readRoot)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		filePath := path.Join(readRoot, name)
		content, err := fs.ReadFile(migrationFS, filePath)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		key := name
		if readRoot != "." {
			key = filePath
		}
		up, down := Split(string(content))
		migrations = append(migrations, Migration{Name: key, Up: up, Down: down})
	}
	return migrations, nil
}

// Apply runs pending migrations from root, each in its own transaction.
func Apply(ctx context.Context, sqlDB *sql.DB, migrationFS fs.FS, root string) error {
	if sqlDB == nil {
		return errors.New("sql db is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	migrations, err := Load(migrationFS, root)
	if err != nil {
		return err
	}

	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);`, migrationTable)
	if _, err := sqlDB.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	applied, err := Applied(ctx, sqlDB)
	if err != nil {
		return err
	}
	done := make(map[string]struct{}, len(applied))
	for _, name := range applied {
		done[name] = struct{}{}
	}

	for _, migration := range migrations {
		if _, ok := done[migration.Name]; ok {
			continue
		}
		if strings.TrimSpace(migration.Up) == "" {
			continue
		}
		if err := applyOne(ctx, sqlDB, migration); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(ctx context.Context, sqlDB *sql.DB, migration Migration) error {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", migration.Name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, migration.Up); err != nil && !IsAlreadyExistsError(err) {
		return fmt.Errorf("exec migration %s: %w", migration.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		migration.Name,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("record migration %s: %w", migration.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", migration.Name, err)
	}
	return nil
}

// Applied lists recorded migration names in application order.
func Applied(ctx context.Context, sqlDB *sql.DB) ([]string, error) {
	rows, err := sqlDB.QueryContext(ctx, "SELECT name FROM "+migrationTable+" ORDER BY applied_at, name")
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applied migrations: %w", err)
	}
	return names, nil
}

// Split separates the Up and Down sections of a migration file.
// Content without an Up marker is treated as Up in full.
func Split(content string) (up, down string) {
	upIdx := strings.Index(content, upMarker)
	downIdx := strings.Index(content, downMarker)
	switch {
	case upIdx == -1 && downIdx == -1:
		return content, ""
	case upIdx == -1:
		return content[:downIdx], content[downIdx+len(downMarker):]
	case downIdx == -1 || downIdx < upIdx:
		return content[upIdx+len(upMarker):], ""
	default:
		return content[upIdx+len(upMarker) : downIdx], content[downIdx+len(downMarker):]
	}
}

// IsAlreadyExistsError reports whether err indicates idempotent DDL success.
func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}
