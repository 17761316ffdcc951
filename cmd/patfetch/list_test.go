package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/patdoc"
	main "github.com/fwojciec/patdoc/cmd/patfetch"
	"github.com/fwojciec/patdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with date, identifier, claim count, and title", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FindRecordsFn: func(_ context.Context, _ patdoc.RecordFilter) ([]*patdoc.CatalogRecord, error) {
				return []*patdoc.CatalogRecord{
					{
						ID:         "rec-123",
						Identifier: "US9876543B2",
						SourceURL:  "https://patents.google.com/patent/US9876543B2/en",
						Title:      "Liquid crystal display device",
						ClaimCount: 21,
						FetchedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:         "rec-456",
						Identifier: "EP3123456A1",
						SourceURL:  "https://patents.google.com/patent/EP3123456A1/en",
						Title:      "Organic light emitting diode",
						ClaimCount: 8,
						FetchedAt:  time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Catalog: catalog,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "US9876543B2")
		assert.Contains(t, output, "EP3123456A1")
		assert.Contains(t, output, "Liquid crystal display device")
		assert.Contains(t, output, "Organic light emitting diode")
		assert.Contains(t, output, "claims=21")
		assert.Contains(t, output, "2025-01-15")
	})

	t.Run("passes the limit through the filter", func(t *testing.T) {
		t.Parallel()

		var gotFilter patdoc.RecordFilter
		catalog := &mock.CatalogService{
			FindRecordsFn: func(_ context.Context, filter patdoc.RecordFilter) ([]*patdoc.CatalogRecord, error) {
				gotFilter = filter
				return []*patdoc.CatalogRecord{}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Catalog: catalog,
		}

		cmd := &main.ListCmd{Limit: 5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when no records exist", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FindRecordsFn: func(_ context.Context, _ patdoc.RecordFilter) ([]*patdoc.CatalogRecord, error) {
				return []*patdoc.CatalogRecord{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Catalog: catalog,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No records found")
	})

	t.Run("returns error when FindRecords fails", func(t *testing.T) {
		t.Parallel()

		dbErr := patdoc.Errorf(patdoc.EINTERNAL, "database connection failed")

		catalog := &mock.CatalogService{
			FindRecordsFn: func(_ context.Context, _ patdoc.RecordFilter) ([]*patdoc.CatalogRecord, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Catalog: catalog,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
