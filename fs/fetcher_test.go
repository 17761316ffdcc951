package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ patdoc.Fetcher = fs.NewFetcher()
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("reads file contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "US9876543B2.html")
		require.NoError(t, os.WriteFile(path, []byte("<html><body>patent</body></html>"), 0644))

		f := fs.NewFetcher()
		defer f.Close()

		got, err := f.Fetch(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>patent</body></html>", got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		f := fs.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := fs.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(ctx, "unused")
		require.ErrorIs(t, err, context.Canceled)
	})
}
