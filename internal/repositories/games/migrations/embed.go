// Package migrations holds the SQLite schema for the game store.
package migrations

import "embed"

// FS contains the goose migration files
//
//go:embed *.sql
var FS embed.FS
