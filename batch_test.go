package patdoc_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/patdoc"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("mixed outcomes", func(t *testing.T) {
		t.Parallel()

		outcomes := []patdoc.Outcome{
			{Source: "a", Identifier: "US1"},
			{Source: "b", Err: errors.New("HTTP 404")},
			{Source: "c", Identifier: "US3", Skipped: true},
		}

		s := patdoc.Summarize(outcomes)
		assert.Equal(t, patdoc.Summary{Total: 3, Succeeded: 2, Failed: 1}, s)
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, patdoc.Summary{}, patdoc.Summarize(nil))
	})

	t.Run("order does not change the tally", func(t *testing.T) {
		t.Parallel()

		forward := []patdoc.Outcome{
			{Source: "a"},
			{Source: "b", Err: errors.New("boom")},
		}
		reversed := []patdoc.Outcome{forward[1], forward[0]}

		assert.Equal(t, patdoc.Summarize(forward), patdoc.Summarize(reversed))
	})
}

func TestOutcome_Succeeded(t *testing.T) {
	t.Parallel()

	ok := patdoc.Outcome{Source: "a", Identifier: "US1"}
	skipped := patdoc.Outcome{Source: "b", Identifier: "US2", Skipped: true}
	failed := patdoc.Outcome{Source: "c", Err: errors.New("timeout")}

	assert.True(t, ok.Succeeded())
	assert.True(t, skipped.Succeeded())
	assert.False(t, failed.Succeeded())
}
