package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/patdoc/sqlite"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		// Verify the records table exists by querying it
		ctx := context.Background()

		var recordCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&recordCount)
		require.NoError(t, err)
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

	t.Run("enforces unique identifiers", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		_, err = db.ExecContext(ctx, `
			INSERT INTO records (id, identifier, source_url, fetched_at)
			VALUES ('a', 'US9876543B2', 'https://patents.google.com/patent/US9876543B2/en', '2024-01-15T10:00:00Z')
		`)
		require.NoError(t, err)

		_, err = db.ExecContext(ctx, `
			INSERT INTO records (id, identifier, source_url, fetched_at)
			VALUES ('b', 'US9876543B2', 'https://patents.google.com/patent/US9876543B2/en', '2024-01-15T10:00:00Z')
		`)
		require.Error(t, err, "duplicate identifier should violate the unique constraint")
	})
}
