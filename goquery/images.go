package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ryder-MHumble/harvest"
)

// Ensure ImageExtractor implements harvest.ImageExtractor at compile time.
var _ harvest.ImageExtractor = (*ImageExtractor)(nil)

// minDimension is the smallest declared width or height an image may
// have before it is treated as an icon or tracking pixel.
const minDimension = 10

// ImageExtractor collects image descriptors from page markup.
type ImageExtractor struct{}

// NewImageExtractor creates a new ImageExtractor.
func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{}
}

// ExtractImages returns the page's image descriptors in document order.
// Images with an empty or data-URI src are skipped, duplicates of an
// already emitted resolved src are skipped, and images declaring an
// integer width or height below 10 are skipped. A dimension attribute
// that does not parse as an integer is treated as unconstrained.
// The returned error is always nil.
func (e *ImageExtractor) ExtractImages(rawHTML, baseURL string) ([]harvest.Image, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, nil
	}

	var base *url.URL
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			base = u
		}
	}

	seen := make(map[string]bool)
	var images []harvest.Image

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" {
			return
		}
		if strings.HasPrefix(strings.ToLower(src), "data:") {
			return
		}

		resolved := resolveHref(base, src)
		if seen[resolved] {
			return
		}
		if isIconSized(sel) {
			return
		}

		seen[resolved] = true
		img := harvest.Image{Src: resolved}
		if alt := strings.TrimSpace(sel.AttrOr("alt", "")); alt != "" {
			img.Alt = alt
		}
		images = append(images, img)
	})

	return images, nil
}

// isIconSized reports whether the element declares an integer width or
// height below minDimension.
func isIconSized(sel *goquery.Selection) bool {
	for _, key := range []string{"width", "height"} {
		v, ok := sel.Attr(key)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n < minDimension {
			return true
		}
	}
	return false
}

// resolveHref resolves href against base. With no base, or when href
// cannot be parsed, the original value is returned unchanged.
func resolveHref(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
