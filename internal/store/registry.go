package store

import "github.com/MKhiriev/go-oxalis/internal/logger"

// Dialect keys a statistics backend can be registered under. The set is
// closed and mirrors the backends shipped with the access point.
const (
	DialectH2     = "H2"
	DialectMySQL  = "MySQL"
	DialectMsSql  = "MsSql"
	DialectOracle = "Oracle"
	DialectHSqlDB = "HSqlDB"
)

// DefaultDialect is the designated fallback binding used when the configured
// dialect has no registered factory. H2 is the embedded backend, so a
// misconfigured dialect degrades to a locally working store instead of a
// crash.
const DefaultDialect = DialectH2

// RepositoryFactory constructs a dialect-specific [RawStatisticsRepository]
// over an established database handle.
type RepositoryFactory func(db *DB, log *logger.Logger) RawStatisticsRepository

// DialectRegistry holds the fixed mapping from dialect key to repository
// factory. It is populated once at construction and read-only afterwards,
// so lookups need no locking.
type DialectRegistry struct {
	factories map[string]RepositoryFactory
	logger    *logger.Logger
}

// NewDialectRegistry builds the registry with every shipped backend bound
// under its dialect key.
func NewDialectRegistry(log *logger.Logger) *DialectRegistry {
	return &DialectRegistry{
		factories: map[string]RepositoryFactory{
			DialectH2:     NewRawStatisticsRepositoryH2,
			DialectMySQL:  NewRawStatisticsRepositoryMySQL,
			DialectMsSql:  NewRawStatisticsRepositoryMsSql,
			DialectOracle: NewRawStatisticsRepositoryOracle,
			DialectHSqlDB: NewRawStatisticsRepositoryHSqlDB,
		},
		logger: log,
	}
}

// Resolve returns the factory registered under dialect, falling back to the
// [DefaultDialect] factory for unknown keys. Resolution never fails; the
// fallback path is logged at warning level so operators can spot a
// misconfigured dialect without the process crashing at selection time.
func (r *DialectRegistry) Resolve(dialect string) RepositoryFactory {
	if factory, ok := r.factories[dialect]; ok {
		r.logger.Info().Str("dialect", dialect).Msg("selected statistics repository")
		return factory
	}

	r.logger.Warn().
		Str("dialect", dialect).
		Str("fallback", DefaultDialect).
		Msg("no statistics repository registered for dialect, using fallback")

	return r.factories[DefaultDialect]
}
