package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-oxalis/internal/logger"
	"github.com/MKhiriev/go-oxalis/models"
)

// rawStatisticsRepository is the shared implementation behind every dialect
// of [RawStatisticsRepository]. Dialects differ only in the SQL placeholder
// format and in how the generated key of an inserted record is retrieved:
// either through the driver (LastInsertId) or through a follow-up query.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type rawStatisticsRepository struct {
	db                *DB
	logger            *logger.Logger
	dialect           string
	placeholder       sq.PlaceholderFormat
	generatedKeyQuery string // empty means use Result.LastInsertId
}

// NewRawStatisticsRepositoryH2 constructs the repository for the embedded H2
// backend. H2 returns generated keys through the driver.
func NewRawStatisticsRepositoryH2(db *DB, log *logger.Logger) RawStatisticsRepository {
	return newRawStatisticsRepository(db, log, DialectH2, sq.Question, "")
}

// NewRawStatisticsRepositoryMySQL constructs the repository for MySQL.
// MySQL returns generated keys through the driver (LAST_INSERT_ID).
func NewRawStatisticsRepositoryMySQL(db *DB, log *logger.Logger) RawStatisticsRepository {
	return newRawStatisticsRepository(db, log, DialectMySQL, sq.Question, "")
}

// NewRawStatisticsRepositoryMsSql constructs the repository for Microsoft
// SQL Server, which uses "@p"-style placeholders and SCOPE_IDENTITY() for
// generated keys.
func NewRawStatisticsRepositoryMsSql(db *DB, log *logger.Logger) RawStatisticsRepository {
	return newRawStatisticsRepository(db, log, DialectMsSql, sq.AtP, generatedKeyMsSql)
}

// NewRawStatisticsRepositoryOracle constructs the repository for Oracle,
// which uses ":"-style placeholders and reads the raw_stats_seq sequence for
// generated keys.
func NewRawStatisticsRepositoryOracle(db *DB, log *logger.Logger) RawStatisticsRepository {
	return newRawStatisticsRepository(db, log, DialectOracle, sq.Colon, generatedKeyOracle)
}

// NewRawStatisticsRepositoryHSqlDB constructs the repository for the embedded
// HSqlDB backend, which retrieves generated keys via CALL IDENTITY().
func NewRawStatisticsRepositoryHSqlDB(db *DB, log *logger.Logger) RawStatisticsRepository {
	return newRawStatisticsRepository(db, log, DialectHSqlDB, sq.Question, generatedKeyHSqlDB)
}

func newRawStatisticsRepository(db *DB, log *logger.Logger, dialect string, placeholder sq.PlaceholderFormat, generatedKeyQuery string) RawStatisticsRepository {
	log.Debug().Str("dialect", dialect).Msg("creating raw statistics repository")
	return &rawStatisticsRepository{
		db:                db,
		logger:            log,
		dialect:           dialect,
		placeholder:       placeholder,
		generatedKeyQuery: generatedKeyQuery,
	}
}

// Persist stores one raw statistics record and returns its generated key.
// A missing MessageID is filled in with a fresh UUID before the insert.
func (r *rawStatisticsRepository) Persist(ctx context.Context, stat models.RawStatistics) (int64, error) {
	log := logger.FromContext(ctx)

	stat.EnsureMessageID()

	query, args, err := sq.Insert(rawStatsTable).
		Columns(rawStatsInsertColumns...).
		Values(stat.MessageID, stat.AccessPointID, string(stat.Direction), stat.Timestamp, stat.Sender, stat.Receiver, stat.DocumentType, stat.Profile, stat.ChannelID).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*rawStatisticsRepository.Persist").Msg("error: building insert")
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rawStatisticsRepository.Persist").Msg("error: executing insert")
		return 0, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	id, err := r.generatedKey(ctx, result)
	if err != nil {
		log.Err(err).Str("func", "*rawStatisticsRepository.Persist").Msg("error: fetching generated key")
		return 0, err
	}
	if id == 0 {
		return 0, ErrStatisticsNotPersisted
	}

	return id, nil
}

// generatedKey retrieves the primary key assigned to the row just inserted,
// using the dialect's follow-up query when the driver cannot report it.
func (r *rawStatisticsRepository) generatedKey(ctx context.Context, result sql.Result) (int64, error) {
	if r.generatedKeyQuery == "" {
		id, err := result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrFetchingGeneratedKey, err)
		}
		return id, nil
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, r.generatedKeyQuery).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFetchingGeneratedKey, err)
	}

	return id, nil
}

// FetchAccumulated returns all records whose timestamp falls in [from, to),
// ordered by timestamp.
func (r *rawStatisticsRepository) FetchAccumulated(ctx context.Context, from, to time.Time) ([]models.RawStatistics, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(rawStatsSelectColumns...).
		From(rawStatsTable).
		Where(sq.And{sq.GtOrEq{"tstamp": from}, sq.Lt{"tstamp": to}}).
		OrderBy("tstamp").
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*rawStatisticsRepository.FetchAccumulated").Msg("error: building select")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rawStatisticsRepository.FetchAccumulated").Msg("error: executing select")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var stats []models.RawStatistics
	for rows.Next() {
		var stat models.RawStatistics
		var direction string
		if err := rows.Scan(&stat.ID, &stat.MessageID, &stat.AccessPointID, &direction, &stat.Timestamp, &stat.Sender, &stat.Receiver, &stat.DocumentType, &stat.Profile, &stat.ChannelID, &stat.DownloadedAt); err != nil {
			log.Err(err).Str("func", "*rawStatisticsRepository.FetchAccumulated").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		stat.Direction = models.Direction(direction)
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return stats, nil
}

// MarkDownloaded stamps the given records as downloaded at the given time.
// A nil or empty ID list is a no-op. Returns [ErrStatisticsNotFound] when
// none of the IDs matched a stored record.
func (r *rawStatisticsRepository) MarkDownloaded(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := sq.Update(rawStatsTable).
		Set("downloaded_at", at).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*rawStatisticsRepository.MarkDownloaded").Msg("error: building update")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rawStatisticsRepository.MarkDownloaded").Msg("error: executing update")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrStatisticsNotFound
	}

	return nil
}
