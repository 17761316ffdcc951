package batch

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/patdoc"
)

// Log is the append-only error log for one batch run: a timestamped
// header, one ERROR line per failed source, and a closing summary block.
// Writes are serialized, so concurrently completing items may append
// directly. A Log is created at batch start and never reused across
// batches.
type Log struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLog starts a batch log on w by writing the header.
func NewLog(w io.Writer) *Log {
	return NewLogAt(w, time.Now())
}

// NewLogAt is like NewLog with an explicit header timestamp, which keeps
// log output deterministic in tests.
func NewLogAt(w io.Writer, at time.Time) *Log {
	l := &Log{w: w}
	fmt.Fprintf(w, "Patent Extraction Log - %s\n", at.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", 80))
	return l
}

// Error appends one failure line for a source.
func (l *Log) Error(source string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "ERROR - %s: %v\n", source, err)
}

// Summary appends the closing summary block. Called once, after all
// items have completed.
func (l *Log) Summary(s patdoc.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, FormatSummary(s))
}

// FormatSummary renders the summary block shared by the batch log and
// console output.
func FormatSummary(s patdoc.Summary) string {
	return fmt.Sprintf("\nExtraction Summary:\nTotal URLs: %d\nSuccessfully processed: %d\nErrors: %d\n",
		s.Total, s.Succeeded, s.Failed)
}
