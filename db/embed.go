// Package db embeds the SQL migrations that define the journal schema.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
