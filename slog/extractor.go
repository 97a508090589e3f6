package slog

import (
	"log/slog"
	"time"

	"github.com/pagelens/pagelens"
)

// Ensure LoggingExtractor implements pagelens.Extractor.
var _ pagelens.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with extraction logging.
type LoggingExtractor struct {
	next   pagelens.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagelens.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(source, html string) (*pagelens.Document, error) {
	begin := time.Now()
	doc, err := e.next.Extract(source, html)
	if err != nil {
		e.logger.Error("extraction failed",
			"source", source,
			"code", pagelens.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("extraction",
		"source", source,
		"nav", len(doc.Nav),
		"sections", len(doc.Sections),
		"images", len(doc.Images),
		"duration", time.Since(begin),
	)
	return doc, nil
}
