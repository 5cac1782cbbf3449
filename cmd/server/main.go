package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-oxalis/internal/config"
	"github.com/MKhiriev/go-oxalis/internal/logger"
	"github.com/MKhiriev/go-oxalis/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// statsDBFileName is the local database file used by the embedded dialects,
// resolved relative to the oxalis home directory.
const statsDBFileName = "oxalis-stats.db"

func main() {
	printBuildInfo()

	log := logger.NewLogger("oxalis-server")

	cfg, err := config.NewGlobalConfiguration(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving global configuration")
	}

	connectTimeout, err := cfg.ConnectTimeout()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading connect timeout")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(connectTimeout)*time.Second)
	defer cancel()

	db, err := connectDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting statistics database")
	}
	defer db.Close()

	if err := db.Validate(ctx, cfg.ValidationQuery()); err != nil {
		log.Fatal().Err(err).Msg("statistics database validation failed")
	}

	dialect := cfg.JdbcDialect()
	if dialect == store.DialectH2 || dialect == store.DialectHSqlDB {
		if err := db.Migrate(dialect); err != nil {
			log.Fatal().Err(err).Msg("error migrating statistics database")
		}
	}

	registry := store.NewDialectRegistry(log)
	repository := registry.Resolve(dialect)(db, log)

	now := time.Now()
	stats, err := repository.FetchAccumulated(ctx, now.Add(-24*time.Hour), now)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading accumulated statistics")
	}

	log.Info().
		Str("dialect", dialect).
		Int("accumulated_last_24h", len(stats)).
		Msg("statistics repository ready")
}

// connectDatabase opens the statistics database matching the configured
// dialect. The embedded dialects run on a local database file under the home
// directory; MySQL connects through the configured connection URI. MsSql and
// Oracle need drivers this binary does not bundle.
func connectDatabase(ctx context.Context, cfg *config.GlobalConfiguration, log *logger.Logger) (*store.DB, error) {
	switch dialect := cfg.JdbcDialect(); dialect {
	case store.DialectMySQL:
		return store.NewConnectMySQL(ctx, cfg.JdbcConnectionURI(), log)
	case store.DialectH2, store.DialectHSqlDB:
		return store.NewConnectSQLite(ctx, filepath.Join(cfg.HomeDir(), statsDBFileName), log)
	default:
		return nil, fmt.Errorf("no bundled database driver for dialect %q", dialect)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
