package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-oxalis/models"
)

// RawStatisticsRepository is the capability contract every dialect-specific
// statistics backend satisfies: create, read over a period, and mark
// downloaded records. Implementations are selected at wiring time through
// [DialectRegistry] based on the configured JDBC dialect.
type RawStatisticsRepository interface {
	// Persist stores one raw statistics record and returns its generated key.
	Persist(ctx context.Context, stat models.RawStatistics) (int64, error)

	// FetchAccumulated returns all records with a timestamp in [from, to),
	// ordered by timestamp.
	FetchAccumulated(ctx context.Context, from, to time.Time) ([]models.RawStatistics, error)

	// MarkDownloaded stamps the given records as downloaded at the given
	// time. Returns [ErrStatisticsNotFound] when none of the IDs exist.
	MarkDownloaded(ctx context.Context, ids []int64, at time.Time) error
}
