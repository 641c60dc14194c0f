package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ryder-MHumble/harvest"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Ensure AttachmentExtractor implements harvest.AttachmentExtractor at
// compile time.
var _ harvest.AttachmentExtractor = (*AttachmentExtractor)(nil)

// Candidate scoring weights. A candidate starts at scoreBase and the
// bonuses apply independently and additively; candidates below
// scoreThreshold are discarded.
const (
	scoreBase            = 2
	scoreKeywordText     = 10
	scoreContainerMarker = 8
	scoreContentAncestor = 3
	scoreThreshold       = 5
)

// anchorKeywords are substrings of an anchor's visible text that mark
// it as a likely document link.
var anchorKeywords = []string{"pdf", "下载", "附件", "download", "attachment"}

// containerMarkers are substrings of an ancestor's class list or id
// that mark an attachment container.
var containerMarkers = []string{"attachments", "download", "file", "fujian"}

// contentTags are ancestor tag names that indicate the anchor sits
// inside the main content region.
var contentTags = map[string]bool{"article": true, "main": true, "content": true}

// AttachmentExtractor locates the most likely official document (PDF)
// link on a page, preferring an explicitly configured selector and
// falling back to a weighted scoring heuristic.
type AttachmentExtractor struct{}

// NewAttachmentExtractor creates a new AttachmentExtractor.
func NewAttachmentExtractor() *AttachmentExtractor {
	return &AttachmentExtractor{}
}

// ExtractAttachment returns the absolute URL of the best document
// candidate, or an empty string when none qualifies. When
// cfg.PDFSelector is set, the first selector match is authoritative:
// no match, or a match without an href, yields no result without
// falling back to the heuristic. The title argument is reserved and
// currently unused.
func (e *AttachmentExtractor) ExtractAttachment(rawHTML, pageURL, title string, cfg harvest.ExtractConfig) (_ string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = harvest.Errorf(harvest.EINTERNAL, "attachment extraction panic: %v", r)
		}
	}()
	_ = title

	doc, docErr := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if docErr != nil {
		return "", nil
	}

	// An unparseable page URL leaves hrefs unresolved rather than
	// failing the whole extraction.
	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil {
		base = u
	}

	if selector := strings.TrimSpace(cfg.PDFSelector); selector != "" {
		return e.fromSelector(doc, base, selector)
	}
	return e.fromHeuristic(doc, base), nil
}

// fromSelector applies the configured CSS selector and returns the
// first match's resolved href.
func (e *AttachmentExtractor) fromSelector(doc *goquery.Document, base *url.URL, selector string) (string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", harvest.Errorf(harvest.EINVALID, "invalid pdf selector %q: %v", selector, err)
	}

	href, ok := doc.FindMatcher(matcher).First().Attr("href")
	if !ok || href == "" {
		return "", nil
	}
	return resolveHref(base, href), nil
}

// candidate is an ephemeral scored link, alive only during ranking.
type candidate struct {
	score int
	url   string
}

// fromHeuristic scores every anchor whose raw href ends with ".pdf"
// and returns the top-ranked candidate at or above the threshold.
func (e *AttachmentExtractor) fromHeuristic(doc *goquery.Document, base *url.URL) string {
	var candidates []candidate

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		// The suffix test runs on the literal href, not the resolved URL.
		if !strings.HasSuffix(strings.ToLower(href), ".pdf") {
			return
		}

		score := scoreBase
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		for _, kw := range anchorKeywords {
			if strings.Contains(text, kw) {
				score += scoreKeywordText
				break
			}
		}
		// The two ancestor bonuses are independent upward walks, each
		// stopping at its first match, so both may apply to the same
		// candidate.
		if hasContainerMarker(sel.Nodes[0]) {
			score += scoreContainerMarker
		}
		if hasContentAncestor(sel.Nodes[0]) {
			score += scoreContentAncestor
		}

		candidates = append(candidates, candidate{score: score, url: resolveHref(base, href)})
	})

	// Stable sort: ties keep document order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	for _, c := range candidates {
		if c.score >= scoreThreshold {
			return c.url
		}
	}
	return ""
}

// hasContainerMarker scans ancestors from nearest to root for a class
// list or id containing an attachment container marker.
func hasContainerMarker(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		marker := strings.ToLower(attrValue(p, "class") + " " + attrValue(p, "id"))
		for _, m := range containerMarkers {
			if strings.Contains(marker, m) {
				return true
			}
		}
	}
	return false
}

// hasContentAncestor scans ancestors from nearest to root for a main
// content tag.
func hasContentAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && contentTags[p.Data] {
			return true
		}
	}
	return false
}

// attrValue returns the value of the named attribute on n, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
