package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-oxalis/internal/logger"
	"github.com/go-sql-driver/mysql"
)

func NewConnectMySQL(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	// reject malformed DSNs before opening the pool
	if _, err := mysql.ParseDSN(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("invalid MySQL DSN")
		return nil, fmt.Errorf("invalid MySQL DSN: %w", err)
	}

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetConnMaxLifetime(3 * time.Minute)
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}
