// Package migrations embeds the goose SQL migrations. The statements stick to
// the subset of SQL shared by PostgreSQL and SQLite.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
