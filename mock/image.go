package mock

import "github.com/Ryder-MHumble/harvest"

var _ harvest.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of harvest.ImageExtractor.
type ImageExtractor struct {
	ExtractImagesFn func(rawHTML, baseURL string) ([]harvest.Image, error)
}

func (e *ImageExtractor) ExtractImages(rawHTML, baseURL string) ([]harvest.Image, error) {
	return e.ExtractImagesFn(rawHTML, baseURL)
}
