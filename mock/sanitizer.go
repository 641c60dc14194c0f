package mock

import "github.com/Ryder-MHumble/harvest"

var _ harvest.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of harvest.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(rawHTML, baseURL string) (string, error)
}

func (s *Sanitizer) Sanitize(rawHTML, baseURL string) (string, error) {
	return s.SanitizeFn(rawHTML, baseURL)
}
