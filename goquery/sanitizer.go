// Package goquery provides DOM-backed implementations of the content
// extraction interfaces using github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ryder-MHumble/harvest"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements harvest.Sanitizer at compile time.
var _ harvest.Sanitizer = (*Sanitizer)(nil)

// safeTags is the fixed set of tags allowed to survive sanitization.
// Elements with any other tag are unwrapped: the wrapper is discarded
// and its children are kept in place.
var safeTags = map[string]bool{
	"p":  true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"img": true, "a": true,
	"ul": true, "ol": true, "li": true,
	"table": true, "thead": true, "tbody": true, "tfoot": true,
	"tr": true, "th": true, "td": true, "caption": true,
	"blockquote": true, "pre": true, "code": true,
	"strong": true, "em": true, "b": true, "i": true, "u": true,
	"s": true, "sub": true, "sup": true,
	"br": true, "hr": true,
	"figure": true, "figcaption": true,
	"dl": true, "dt": true, "dd": true,
}

// safeAttrs maps a safe tag to the attributes it may keep. Safe tags
// absent from this map keep no attributes at all.
var safeAttrs = map[string]map[string]bool{
	"a":   {"href": true, "title": true},
	"img": {"src": true, "alt": true, "title": true, "width": true, "height": true},
	"td":  {"colspan": true, "rowspan": true},
	"th":  {"colspan": true, "rowspan": true},
}

// stripSelector matches tags that are removed together with their
// entire subtree: scripts, styles, page chrome, embedded frames, and
// inline vector graphics.
const stripSelector = "script, style, noscript, nav, header, footer, aside, iframe, svg"

// Sanitizer narrows arbitrary page markup to the safe-tag subset.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize removes unsafe subtrees, unwraps unknown tags, whitelists
// attributes, resolves img[src] and a[href] against baseURL when it is
// non-empty, and re-serializes the tree. Malformed input is recovered
// leniently; the returned error is always nil.
func (s *Sanitizer) Sanitize(rawHTML, baseURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// html.Parse only fails on reader errors, which a string
		// reader cannot produce. Treat as empty content regardless.
		return "", nil
	}

	var base *url.URL
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			base = u
		}
	}

	doc.Find(stripSelector).Remove()

	body := doc.Find("body")

	// Snapshot the remaining elements before any structural mutation.
	// Unwrapping a node mid-traversal must not skip siblings or
	// revisit nodes, so the pass operates on this fixed list: every
	// originally-present element is evaluated exactly once.
	snapshot := body.Find("*").Nodes
	for _, n := range snapshot {
		tag := n.Data // the parser lowercases tag names
		if !safeTags[tag] {
			unwrap(n)
			continue
		}
		filterAttrs(n, safeAttrs[tag])
		if base != nil {
			switch tag {
			case "img":
				resolveAttr(n, "src", base)
			case "a":
				resolveAttr(n, "href", base)
			}
		}
	}

	out, err := body.Html()
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// unwrap replaces n in its parent's child list with n's own children,
// preserving their relative order.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

// filterAttrs removes every attribute of n not present in allowed.
func filterAttrs(n *html.Node, allowed map[string]bool) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if allowed[a.Key] {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

// resolveAttr rewrites a present, non-empty attribute value to its
// absolute form resolved against base. Unparseable values are left
// unchanged.
func resolveAttr(n *html.Node, key string, base *url.URL) {
	for i, a := range n.Attr {
		if a.Key != key || a.Val == "" {
			continue
		}
		if ref, err := url.Parse(a.Val); err == nil {
			n.Attr[i].Val = base.ResolveReference(ref).String()
		}
	}
}
