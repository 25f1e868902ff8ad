// Package sqlrepotest provides an in-memory database with the tracker schema.
package sqlrepotest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"employee-tracker/config"
	"employee-tracker/internal/repository/sqlrepo"
)

// Open returns a fresh in-memory sqlite database. It is limited to a single
// connection because every sqlite :memory: connection is its own database.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	cfg := &config.Config{Driver: config.DriverSQLite, Name: ":memory:", MaxOpenConns: 1}
	db, err := sqlrepo.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlrepo.Migrate(context.Background(), db, config.DriverSQLite))
	return db
}
