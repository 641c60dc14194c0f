package harvest

import "time"

// Page is a fetched page handed over by the crawl layer.
type Page struct {
	// URL is the final page URL after redirects.
	URL string

	// Title is the article title supplied by the crawler, may be empty.
	Title string

	// HTML is the raw page markup.
	HTML string
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.HTML == "" {
		return Errorf(EINVALID, "page HTML required")
	}
	return nil
}

// Record holds the extracted representation of a single page. It is an
// in-memory value produced per call; persistence belongs to the caller.
type Record struct {
	ID            string    `json:"id"`
	SourceURL     string    `json:"sourceUrl"`
	Title         string    `json:"title"`
	ContentHTML   string    `json:"contentHtml"`
	Markdown      string    `json:"markdown,omitempty"`
	Images        []Image   `json:"images"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
	ContentHash   string    `json:"contentHash"`
	ProcessedAt   time.Time `json:"processedAt"`
}
