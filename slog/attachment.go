// Package slog provides logging decorators for the extraction
// interfaces using the standard library's log/slog.
package slog

import (
	"log/slog"
	"time"

	"github.com/Ryder-MHumble/harvest"
)

// Ensure LoggingAttachmentExtractor implements harvest.AttachmentExtractor.
var _ harvest.AttachmentExtractor = (*LoggingAttachmentExtractor)(nil)

// LoggingAttachmentExtractor wraps an AttachmentExtractor with logging
// and failure suppression. Attachment discovery is optional enrichment:
// an extraction failure is logged as a warning with page context and
// reported as the none result instead of propagating.
type LoggingAttachmentExtractor struct {
	next   harvest.AttachmentExtractor
	logger *slog.Logger
}

// NewLoggingAttachmentExtractor creates a new LoggingAttachmentExtractor.
func NewLoggingAttachmentExtractor(next harvest.AttachmentExtractor, logger *slog.Logger) *LoggingAttachmentExtractor {
	return &LoggingAttachmentExtractor{next: next, logger: logger}
}

// ExtractAttachment delegates to the wrapped extractor and logs the
// outcome. The returned error is always nil.
func (e *LoggingAttachmentExtractor) ExtractAttachment(rawHTML, pageURL, title string, cfg harvest.ExtractConfig) (string, error) {
	begin := time.Now()
	attachmentURL, err := e.next.ExtractAttachment(rawHTML, pageURL, title, cfg)
	if err != nil {
		e.logger.Warn("attachment extraction failed",
			"url", pageURL,
			"err", err,
		)
		return "", nil
	}
	e.logger.Info("attachment extraction",
		"url", pageURL,
		"found", attachmentURL != "",
		"duration", time.Since(begin),
	)
	return attachmentURL, nil
}
