// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// rawStatsTable is the table every dialect persists raw statistics into.
const rawStatsTable = "raw_stats"

// rawStatsInsertColumns are the columns written on Persist, in insert order.
var rawStatsInsertColumns = []string{
	"message_id",
	"ap_id",
	"direction",
	"tstamp",
	"sender",
	"receiver",
	"document_type",
	"profile",
	"channel_id",
}

// rawStatsSelectColumns are the columns read back on FetchAccumulated.
var rawStatsSelectColumns = []string{
	"id",
	"message_id",
	"ap_id",
	"direction",
	"tstamp",
	"sender",
	"receiver",
	"document_type",
	"profile",
	"channel_id",
	"downloaded_at",
}

// Dialect-specific queries that fetch the key generated for the last
// inserted row. Dialects without an entry rely on the driver's
// [database/sql.Result.LastInsertId].
const (
	generatedKeyMsSql  = `SELECT SCOPE_IDENTITY();`
	generatedKeyOracle = `SELECT raw_stats_seq.CURRVAL FROM dual`
	generatedKeyHSqlDB = `CALL IDENTITY()`
)
