package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pantry/sqlite"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()

		var itemCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pantry").Scan(&itemCount)
		require.NoError(t, err)

		var receiptCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM receipts").Scan(&receiptCount)
		require.NoError(t, err)
	})

	t.Run("records applied migrations", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		version, err := db.SchemaVersion(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, version)
	})

	t.Run("refuses a schema from a newer build", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(context.Background(), "PRAGMA user_version = 99")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		err = sqlite.NewDB(dbPath).Open()
		require.Error(t, err)
		require.Contains(t, err.Error(), "newer")
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("reopening keeps existing rows", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		ctx := context.Background()

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(ctx, "INSERT INTO pantry (item_name, last_updated) VALUES ('Milk', '2026-01-01T00:00:00Z')")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pantry").Scan(&n))
		require.Equal(t, 1, n)
	})

	t.Run("rejects non-positive quantity at the schema level", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		_, err := db.ExecContext(context.Background(),
			"INSERT INTO pantry (item_name, quantity, last_updated) VALUES ('Milk', 0, '2026-01-01T00:00:00Z')")
		require.Error(t, err)
	})
}
