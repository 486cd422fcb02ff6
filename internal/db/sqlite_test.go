package db

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode       Mode
		wantTxLock bool
	}{
		{mode: ModeWrite, wantTxLock: true},
		{mode: ModeRead, wantTxLock: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			dsn := buildDSN("/tmp/prefs.sqlite", tt.mode)

			assert.True(t, strings.HasPrefix(dsn, "/tmp/prefs.sqlite?"))
			assert.Contains(t, dsn, "_journal_mode=WAL")
			assert.Contains(t, dsn, "_busy_timeout=5000")
			assert.Contains(t, dsn, "_synchronous=NORMAL")
			assert.Contains(t, dsn, "_foreign_keys=on")
			if tt.wantTxLock {
				assert.Contains(t, dsn, "_txlock=immediate")
			} else {
				assert.NotContains(t, dsn, "_txlock")
			}
		})
	}
}

func TestOpenSQLite_InvalidMode(t *testing.T) {
	t.Parallel()
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), "invalid", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SQLite mode")
}

func TestOpenSQLite_InvalidPath(t *testing.T) {
	t.Parallel()
	_, err := OpenSQLite("/nonexistent/dir/test.db", ModeWrite, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping sqlite")

	_, err = OpenPools("/nonexistent/dir/test.db", 4)
	require.Error(t, err)
}

func TestOpenSQLite_WritePool(t *testing.T) {
	t.Parallel()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), ModeWrite, 0)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var journalMode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", strings.ToLower(journalMode))

	var busyTimeout int
	require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout))
	assert.Equal(t, 5000, busyTimeout)

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestOpenSQLite_ReadDefaultMaxOpen(t *testing.T) {
	t.Parallel()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), ModeRead, 0)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, 4, db.Stats().MaxOpenConnections)
}

func TestOpenPools_ReadSeesWrites(t *testing.T) {
	t.Parallel()
	pools := OpenTestSQLite(t)

	_, err := pools.Write.Exec(`INSERT INTO preferences (client_id, key, value) VALUES ('c1', 'k', 'v')`)
	require.NoError(t, err)

	var val string
	require.NoError(t, pools.Read.QueryRow(`SELECT value FROM preferences WHERE client_id = 'c1'`).Scan(&val))
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, pools.Write.Stats().MaxOpenConnections)
	assert.Equal(t, 4, pools.Read.Stats().MaxOpenConnections)
}

func TestOpenPools_ConcurrentReads(t *testing.T) {
	t.Parallel()
	pools := OpenTestSQLite(t)

	for i := 0; i < 20; i++ {
		_, err := pools.Write.Exec(`INSERT INTO preferences (client_id, key, value) VALUES (?, 'k', 'v')`, i)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			var count int
			errs[idx] = pools.Read.QueryRow("SELECT count(*) FROM preferences").Scan(&count)
		}(i)
	}
	wg.Wait()

	for i, e := range errs {
		assert.NoError(t, e, "reader %d failed", i)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	t.Parallel()
	pools := OpenTestSQLite(t)

	require.NoError(t, RunMigrations(pools.Write))
	v, err := SchemaVersion(pools.Write)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}
