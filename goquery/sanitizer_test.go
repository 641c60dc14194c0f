package goquery_test

import (
	"testing"

	"github.com/Ryder-MHumble/harvest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer_RemovesScriptSubtrees(t *testing.T) {
	t.Parallel()

	html := `<div>
<p>Visible paragraph.</p>
<script type="text/javascript">var secret = "leaked-token";</script>
</div>`

	s := goquery.NewSanitizer()
	out, err := s.Sanitize(html, "")

	require.NoError(t, err)
	assert.Contains(t, out, "Visible paragraph.")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "leaked-token")
}

func TestSanitizer_RemovesChrome(t *testing.T) {
	t.Parallel()

	html := `<header>Site Header</header>
<nav><a href="/home">Home</a></nav>
<p>Announcement body.</p>
<footer>Copyright Footer</footer>
<style>.x { color: red }</style>
<iframe src="https://ads.example.com"></iframe>
<svg><circle r="4"/></svg>`

	s := goquery.NewSanitizer()
	out, err := s.Sanitize(html, "")

	require.NoError(t, err)
	assert.Contains(t, out, "Announcement body.")
	assert.NotContains(t, out, "Site Header")
	assert.NotContains(t, out, "Home")
	assert.NotContains(t, out, "Copyright Footer")
	assert.NotContains(t, out, "color: red")
	assert.NotContains(t, out, "iframe")
	assert.NotContains(t, out, "svg")
}

func TestSanitizer_UnwrapsUnknownTags(t *testing.T) {
	t.Parallel()

	html := `<div class="wrapper"><span data-x="1">Some <strong>bold</strong> text</span></div>`

	s := goquery.NewSanitizer()
	out, err := s.Sanitize(html, "")

	require.NoError(t, err)
	assert.NotContains(t, out, "<div")
	assert.NotContains(t, out, "<span")
	assert.Contains(t, out, "Some <strong>bold</strong> text")
}

func TestSanitizer_UnwrapsNestedUnknownTags(t *testing.T) {
	t.Parallel()

	html := `<section><div><article2><p>Deeply wrapped paragraph.</p></article2></div></section>`

	s := goquery.NewSanitizer()
	out, err := s.Sanitize(html, "")

	require.NoError(t, err)
	assert.Equal(t, "<p>Deeply wrapped paragraph.</p>", out)
}

func TestSanitizer_WhitelistsAttributes(t *testing.T) {
	t.Parallel()

	html := `<a onclick="steal()" href="/x" title="t">link</a>`

	s := goquery.NewSanitizer()
	out, err := s.Sanitize(html, "")

	require.NoError(t, err)
	assert.Contains(t, out, `href="/x"`)
	assert.Contains(t, out, `title="t"`)
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "steal")
}

func TestSanitizer_DropsAllAttributesOnUnlistedSafeTags(t *testing.T) {
	t.Parallel()

	html := `<p class="intro" style="color:red" id="p1">Text</p>`

	s := goquery.NewSanitizer()
	out, err := s.Sanitize(html, "")

	require.NoError(t, err)
	assert.Equal(t, "<p>Text</p>", out)
}

func TestSanitizer_ResolvesRelativeURLs(t *testing.T) {
	t.Parallel()

	t.Run("img src with dot-dot segments", func(t *testing.T) {
		t.Parallel()

		html := `<img src="../c.jpg" alt="pic">`

		s := goquery.NewSanitizer()
		out, err := s.Sanitize(html, "https://example.com/a/b/")

		require.NoError(t, err)
		assert.Contains(t, out, `src="https://example.com/a/c.jpg"`)
	})

	t.Run("anchor href", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/files/doc.pdf">doc</a>`

		s := goquery.NewSanitizer()
		out, err := s.Sanitize(html, "https://example.com/notice/1.html")

		require.NoError(t, err)
		assert.Contains(t, out, `href="https://example.com/files/doc.pdf"`)
	})

	t.Run("absolute URLs unchanged", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://other.example.org/x.pdf">doc</a>`

		s := goquery.NewSanitizer()
		out, err := s.Sanitize(html, "https://example.com/page")

		require.NoError(t, err)
		assert.Contains(t, out, `href="https://other.example.org/x.pdf"`)
	})

	t.Run("no base URL leaves values untouched", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/relative">doc</a>`

		s := goquery.NewSanitizer()
		out, err := s.Sanitize(html, "")

		require.NoError(t, err)
		assert.Contains(t, out, `href="/relative"`)
	})
}

func TestSanitizer_Idempotent(t *testing.T) {
	t.Parallel()

	html := `<div class="post">
<h2 style="font-size:30px">Title</h2>
<p>Intro with a <a href="/x" onclick="bad()">link</a> and an <img src="../p.png" width="400">.</p>
<script>tracking();</script>
<table><tr><td colspan="2">cell</td></tr></table>
</div>`

	s := goquery.NewSanitizer()
	once, err := s.Sanitize(html, "https://example.com/a/b/")
	require.NoError(t, err)

	twice, err := s.Sanitize(once, "https://example.com/a/b/")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestSanitizer_MalformedInput(t *testing.T) {
	t.Parallel()

	t.Run("unclosed tags recover", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewSanitizer()
		out, err := s.Sanitize(`<p>first<p>second<b>bold`, "")

		require.NoError(t, err)
		assert.Contains(t, out, "first")
		assert.Contains(t, out, "second")
		assert.Contains(t, out, "bold")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewSanitizer()
		out, err := s.Sanitize("", "")

		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestSanitizer_KeepsTableStructure(t *testing.T) {
	t.Parallel()

	html := `<table border="1"><thead><tr><th scope="col" rowspan="2">h</th></tr></thead><tbody><tr><td colspan="3">c</td></tr></tbody></table>`

	s := goquery.NewSanitizer()
	out, err := s.Sanitize(html, "")

	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, `<th rowspan="2">h</th>`)
	assert.Contains(t, out, `<td colspan="3">c</td>`)
	assert.NotContains(t, out, "border")
	assert.NotContains(t, out, "scope")
}
