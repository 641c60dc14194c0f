package harvest

// ExtractConfig holds the per-source extraction options recognized by
// this core. Sources carry additional crawl settings; those are opaque
// here.
type ExtractConfig struct {
	// PDFSelector is a CSS selector locating the official document
	// link on a page. When empty, a weighted scoring heuristic is used
	// instead. When set, the selector is authoritative: a selector
	// that matches nothing yields no result, with no heuristic
	// fallback.
	PDFSelector string
}

// AttachmentExtractor locates the most likely official document (PDF)
// link on a page.
type AttachmentExtractor interface {
	// ExtractAttachment returns the absolute URL of the best
	// candidate, or an empty string when no candidate qualifies.
	// The title argument is reserved for future scoring rules and is
	// currently unused.
	ExtractAttachment(rawHTML, pageURL, title string, cfg ExtractConfig) (string, error)
}
