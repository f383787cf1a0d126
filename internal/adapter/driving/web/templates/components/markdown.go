package components

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	// Briefs render inside a <p>, so only phrasing elements survive.
	// Disallowed tags are stripped and their text kept.
	htmlSanitizer = bluemonday.NewPolicy()
	htmlSanitizer.AllowElements("strong", "em", "code", "del", "br")
	htmlSanitizer.AllowAttrs("href").OnElements("a")
	htmlSanitizer.AllowStandardURLs()
	htmlSanitizer.RequireNoReferrerOnLinks(true)
	htmlSanitizer.AddTargetBlankToFullyQualifiedLinks(true)
}

// RenderInlineMarkdown converts override brief text written in markdown to
// sanitized inline HTML. Returns empty string for empty input.
func RenderInlineMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}
