package mock

import "github.com/Ryder-MHumble/harvest"

var _ harvest.AttachmentExtractor = (*AttachmentExtractor)(nil)

// AttachmentExtractor is a mock implementation of harvest.AttachmentExtractor.
type AttachmentExtractor struct {
	ExtractAttachmentFn func(rawHTML, pageURL, title string, cfg harvest.ExtractConfig) (string, error)
}

func (e *AttachmentExtractor) ExtractAttachment(rawHTML, pageURL, title string, cfg harvest.ExtractConfig) (string, error) {
	return e.ExtractAttachmentFn(rawHTML, pageURL, title, cfg)
}
