package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStatisticsNotPersisted is returned when an INSERT of a statistics
	// record completes without error but no generated key can be obtained,
	// indicating that no row was actually stored.
	ErrStatisticsNotPersisted = errors.New("raw statistics record was not persisted")

	// ErrStatisticsNotFound is returned when an update targets record IDs of
	// which none exist in the database.
	ErrStatisticsNotFound = errors.New("raw statistics records were not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan raw statistics rows")

	// ErrFetchingGeneratedKey is returned when the dialect-specific follow-up
	// that retrieves the generated primary key of an inserted record fails.
	ErrFetchingGeneratedKey = errors.New("failed to fetch generated key")
)
