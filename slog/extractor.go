package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/patdoc"
)

// Ensure LoggingExtractor implements patdoc.DocumentExtractor.
var _ patdoc.DocumentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DocumentExtractor with debug logging.
type LoggingExtractor struct {
	next   patdoc.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next patdoc.DocumentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the outcome of an extraction and delegates to the
// wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (doc *patdoc.PatentDocument, err error) {
	defer func(begin time.Time) {
		identifier := ""
		claims := 0
		if doc != nil {
			identifier = doc.Identifier
			claims = len(doc.Claims)
		}
		e.logger.Info("extract",
			"identifier", identifier,
			"claims", claims,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
