// Package migrations embeds the goose migration scripts for the storefront's
// local SQLite database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
