package harvest

// Image describes a single image asset referenced by page content.
type Image struct {
	// Src is the image location, resolved to absolute form when a base
	// URL was available.
	Src string `json:"src"`

	// Alt is the trimmed alternative text. Empty when the attribute is
	// absent or blank.
	Alt string `json:"alt,omitempty"`
}

// ImageExtractor produces the image assets referenced by a page.
type ImageExtractor interface {
	// ExtractImages returns image descriptors in document order.
	// Inline data URIs, duplicates of an already emitted src, and
	// icon-sized images (declared width or height below 10) are
	// filtered out. Malformed input yields a best-effort result,
	// never an error.
	ExtractImages(rawHTML, baseURL string) ([]Image, error)
}
