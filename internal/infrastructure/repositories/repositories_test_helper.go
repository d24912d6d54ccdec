package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createNetworkTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE networks (
		id TEXT PRIMARY KEY,
		chain_id INTEGER NOT NULL UNIQUE,
		name TEXT NOT NULL,
		rpc_url TEXT NOT NULL,
		other_rpc_urls TEXT,
		test_net BOOLEAN NOT NULL DEFAULT 0,
		block_explorer_url TEXT,
		fee_multiplier REAL NOT NULL DEFAULT 1,
		gas_limit_multiplier REAL NOT NULL DEFAULT 1,
		active BOOLEAN NOT NULL DEFAULT 1,
		default_signer_address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
