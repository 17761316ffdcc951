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

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    fs.Format
		wantErr bool
	}{
		{name: "yaml", input: "yaml", want: fs.FormatYAML},
		{name: "yml alias", input: "yml", want: fs.FormatYAML},
		{name: "json", input: "json", want: fs.FormatJSON},
		{name: "xml", input: "xml", want: fs.FormatXML},
		{name: "unknown", input: "toml", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.ParseFormat(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, patdoc.EINVALID, patdoc.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_Paths(t *testing.T) {
	t.Parallel()

	s := fs.NewStore("/data/patents", fs.FormatJSON)

	assert.Equal(t, "/data/patents", s.BaseDir())
	assert.Equal(t, filepath.Join("/data/patents", "records"), s.RecordsDir())
	assert.Equal(t, filepath.Join("/data/patents", "records", "US9876543B2.json"), s.RecordPath("US9876543B2"))
	assert.Equal(t, filepath.Join("/data/patents", "markdown", "US9876543B2.md"), s.RenditionPath("US9876543B2"))
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	doc := &patdoc.PatentDocument{
		Identifier:    "US9876543B2",
		Title:         "Display device",
		AssigneeNames: []string{"Acme Display Co Ltd"},
		Claims: []patdoc.Claim{
			{Number: 1, Text: "A display device."},
			{Number: 2, Text: "The device of claim 1.", DependsOn: 1},
		},
	}

	t.Run("writes record and rendition", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStore(t.TempDir(), fs.FormatYAML)

		err := s.Save(context.Background(), doc, "# Display device\n")
		require.NoError(t, err)

		data, err := os.ReadFile(s.RecordPath("US9876543B2"))
		require.NoError(t, err)
		got, err := fs.DecodeRecord(data, fs.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, doc, got)

		rendition, err := os.ReadFile(s.RenditionPath("US9876543B2"))
		require.NoError(t, err)
		assert.Equal(t, "# Display device\n", string(rendition))
	})

	t.Run("skips rendition when empty", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStore(t.TempDir(), fs.FormatYAML)

		err := s.Save(context.Background(), doc, "")
		require.NoError(t, err)

		_, err = os.Stat(s.RecordPath("US9876543B2"))
		require.NoError(t, err)
		_, err = os.Stat(s.RenditionPath("US9876543B2"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("round-trips every format", func(t *testing.T) {
		t.Parallel()

		for _, format := range []fs.Format{fs.FormatYAML, fs.FormatJSON, fs.FormatXML} {
			s := fs.NewStore(t.TempDir(), format)

			err := s.Save(context.Background(), doc, "")
			require.NoError(t, err)

			data, err := os.ReadFile(s.RecordPath("US9876543B2"))
			require.NoError(t, err)
			got, err := fs.DecodeRecord(data, format)
			require.NoError(t, err)
			assert.Equal(t, doc, got, "format %s", format)
		}
	})

	t.Run("overwrites an existing record", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStore(t.TempDir(), fs.FormatYAML)

		require.NoError(t, s.Save(context.Background(), doc, ""))

		updated := *doc
		updated.Title = "Improved display device"
		require.NoError(t, s.Save(context.Background(), &updated, ""))

		data, err := os.ReadFile(s.RecordPath("US9876543B2"))
		require.NoError(t, err)
		got, err := fs.DecodeRecord(data, fs.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "Improved display device", got.Title)
	})

	t.Run("rejects a document without an identifier", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStore(t.TempDir(), fs.FormatYAML)

		err := s.Save(context.Background(), &patdoc.PatentDocument{Title: "No number"}, "")
		require.Error(t, err)
		assert.Equal(t, patdoc.EINVALID, patdoc.ErrorCode(err))
	})

	t.Run("defaults to yaml", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStore(t.TempDir(), "")

		err := s.Save(context.Background(), doc, "")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(s.BaseDir(), "records", "US9876543B2.yaml"))
		require.NoError(t, err)
	})
}

func TestStore_Exists(t *testing.T) {
	t.Parallel()

	s := fs.NewStore(t.TempDir(), fs.FormatYAML)

	assert.False(t, s.Exists("US9876543B2"))

	doc := &patdoc.PatentDocument{Identifier: "US9876543B2", Title: "Display device"}
	require.NoError(t, s.Save(context.Background(), doc, ""))

	assert.True(t, s.Exists("US9876543B2"))
	assert.False(t, s.Exists("US0000000A1"))

	// An empty identifier never exists, even if a stray file matches.
	assert.False(t, s.Exists(""))
}
