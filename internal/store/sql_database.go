package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-oxalis/internal/logger"
	"github.com/MKhiriev/go-oxalis/migrations"
)

// DB wraps the shared database handle together with the logger the
// repositories log through.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the managed schema migrations for the given dialect.
// Only the embedded dialects carry managed migrations; see
// [migrations.Migrate].
func (db *DB) Migrate(dialect string) error {
	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", dialect).Msg("applying managed migrations")

	return migrations.Migrate(db.DB, dialect)
}

// Validate runs the configured JDBC validation query (e.g. "select 1")
// against the connection and returns an error when the connection is not
// healthy.
func (db *DB) Validate(ctx context.Context, query string) error {
	var result int
	if err := db.QueryRowContext(ctx, query).Scan(&result); err != nil {
		db.logger.Error().Err(err).Str("func", "*DB.Validate").Str("query", query).Msg("validation query failed")
		return fmt.Errorf("validation query %q failed: %w", query, err)
	}

	return nil
}
