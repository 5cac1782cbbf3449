package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// gooseDialects maps the configured JDBC dialect onto the goose dialect used
// to track migration state. Only the embedded dialects are listed: they run
// on the bundled SQLite file whose schema this binary owns. MySQL, MsSql and
// Oracle installations are provisioned by their DBAs from the distribution's
// DDL scripts.
var gooseDialects = map[string]string{
	"H2":     "sqlite3",
	"HSqlDB": "sqlite3",
}

// Migrate brings the raw statistics schema up to date for the given dialect.
// Dialects without managed migrations return an error naming the dialect.
func Migrate(db *sql.DB, dialect string) error {
	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("no managed migrations for dialect %q, schema must be provisioned externally", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
