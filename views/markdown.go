package views

import (
	"bytes"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts markdown to sanitized HTML. Post bodies are stored
// as raw markdown; this is the only place they become HTML.
func RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// Fall back to the escaped source rather than dropping the body.
		return "<pre>" + esc(content) + "</pre>"
	}
	return sanitizer.Sanitize(buf.String())
}

// Markdown returns a component rendering content as sanitized HTML.
func Markdown(content string) templ.Component {
	return component(func(b *bytes.Buffer) {
		b.WriteString(RenderMarkdown(content))
	})
}
