package migrations

import "embed"

// FS contains embedded SQLite migrations for campaign storage.
//
//go:embed *.sql
var FS embed.FS
