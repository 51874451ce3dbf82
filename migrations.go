package sitebuilder

import (
	"embed"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files for the builder tables.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}
