package migrations

import "embed"

// FS contains embedded SQLite migrations for the unit definition store.
//
//go:embed *.sql
var FS embed.FS
