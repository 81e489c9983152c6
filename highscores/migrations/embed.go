package migrations

import "embed"

// FS contains embedded SQLite migrations for the high-score table.
//
//go:embed *.sql
var FS embed.FS
