// Package migrations embeds the SQL schema of the binding ledger, one
// directory per database dialect.
package migrations

import "embed"

// Directories inside Migrations.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
