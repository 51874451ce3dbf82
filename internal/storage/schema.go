package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

const (
	ProviderMemory   = "memory"
	ProviderSQLite   = "sqlite"
	ProviderPostgres = "postgres"
)

var ErrUnknownProvider = errors.New("storage: unknown provider")

// OpenDB opens a bun database for a SQL provider. The memory provider has no
// database and is rejected here.
func OpenDB(provider, dsn string) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderSQLite:
		sqlDB, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case ProviderPostgres:
		sqlDB, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

// CreateSchema creates the builder tables when they are missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*DraftRecord)(nil),
		(*NavigationRecord)(nil),
		(*SectionRecord)(nil),
		(*PublicationRecord)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
