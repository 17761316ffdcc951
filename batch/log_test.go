package batch_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	t.Parallel()

	t.Run("writes the header on creation", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		at := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
		batch.NewLogAt(&buf, at)

		lines := strings.Split(buf.String(), "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.Equal(t, "Patent Extraction Log - 2024-06-01 14:30:00", lines[0])
		assert.Equal(t, strings.Repeat("=", 80), lines[1])
		assert.Equal(t, "", lines[2])
	})

	t.Run("appends one line per failure", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := batch.NewLogAt(&buf, time.Now())

		log.Error("https://example.com/patent/US1/en", patdoc.Errorf(patdoc.EUNAVAILABLE, "connection refused"))

		assert.Contains(t, buf.String(), "ERROR - https://example.com/patent/US1/en: ")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("writes the summary block", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := batch.NewLogAt(&buf, time.Now())

		log.Summary(patdoc.Summary{Total: 5, Succeeded: 3, Failed: 2})

		assert.Contains(t, buf.String(),
			"\nExtraction Summary:\nTotal URLs: 5\nSuccessfully processed: 3\nErrors: 2\n")
	})

	t.Run("serializes concurrent appends", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		log := batch.NewLogAt(&buf, time.Now())

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				log.Error("https://example.com/x", patdoc.Errorf(patdoc.EINTERNAL, "boom"))
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, strings.Count(buf.String(), "ERROR - "))
	})
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	got := batch.FormatSummary(patdoc.Summary{Total: 10, Succeeded: 9, Failed: 1})

	assert.Equal(t, "\nExtraction Summary:\nTotal URLs: 10\nSuccessfully processed: 9\nErrors: 1\n", got)
}
