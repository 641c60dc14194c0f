// Package process composes the extraction components into per-page
// processing. It turns one fetched page into a storable record by
// running content extraction, sanitization, image extraction, and
// attachment discovery.
package process

import (
	"context"
	"time"

	"github.com/Ryder-MHumble/harvest"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Processor transforms fetched pages into records.
type Processor struct {
	// Extractor narrows a page to its main content before
	// sanitization. Optional; when nil the full page is sanitized.
	Extractor harvest.Extractor

	Sanitizer   harvest.Sanitizer
	Images      harvest.ImageExtractor
	Attachments harvest.AttachmentExtractor

	// Converter renders a Markdown representation of the sanitized
	// content. Optional.
	Converter harvest.Converter
}

// Process transforms one fetched page into a record. The three
// extraction components are pure functions over their own parsed
// trees, so they run concurrently. Nothing is persisted; the record
// is returned to the caller.
func (p *Processor) Process(ctx context.Context, page *harvest.Page, cfg harvest.ExtractConfig) (*harvest.Record, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	content := page.HTML
	title := page.Title
	if p.Extractor != nil {
		// Main-content narrowing is best effort: on failure the full
		// page goes through sanitization instead.
		if result, err := p.Extractor.Extract(page.HTML); err == nil && result.ContentHTML != "" {
			content = result.ContentHTML
			if title == "" {
				title = result.Title
			}
		}
	}

	var (
		sanitized     string
		images        []harvest.Image
		attachmentURL string
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sanitized, err = p.Sanitizer.Sanitize(content, page.URL)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = p.Images.ExtractImages(content, page.URL)
		return err
	})
	g.Go(func() error {
		// Attachment links often sit outside the article body, so the
		// scan covers the full page rather than the narrowed content.
		var err error
		attachmentURL, err = p.Attachments.ExtractAttachment(page.HTML, page.URL, title, cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var markdown string
	if p.Converter != nil && sanitized != "" {
		if md, err := p.Converter.Convert(sanitized); err == nil {
			markdown = md
		}
	}

	return &harvest.Record{
		ID:            uuid.New().String(),
		SourceURL:     page.URL,
		Title:         title,
		ContentHTML:   sanitized,
		Markdown:      markdown,
		Images:        images,
		AttachmentURL: attachmentURL,
		ContentHash:   ComputeHash(sanitized),
		ProcessedAt:   time.Now(),
	}, nil
}
