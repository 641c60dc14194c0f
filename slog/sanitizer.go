package slog

import (
	"log/slog"
	"time"

	"github.com/Ryder-MHumble/harvest"
)

// Ensure LoggingSanitizer implements harvest.Sanitizer.
var _ harvest.Sanitizer = (*LoggingSanitizer)(nil)

// LoggingSanitizer wraps a Sanitizer with debug logging.
type LoggingSanitizer struct {
	next   harvest.Sanitizer
	logger *slog.Logger
}

// NewLoggingSanitizer creates a new LoggingSanitizer.
func NewLoggingSanitizer(next harvest.Sanitizer, logger *slog.Logger) *LoggingSanitizer {
	return &LoggingSanitizer{next: next, logger: logger}
}

// Sanitize delegates to the wrapped sanitizer and logs the operation.
func (s *LoggingSanitizer) Sanitize(rawHTML, baseURL string) (out string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sanitize",
			"base_url", baseURL,
			"in_bytes", len(rawHTML),
			"out_bytes", len(out),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Sanitize(rawHTML, baseURL)
}
