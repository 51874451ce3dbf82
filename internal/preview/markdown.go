package preview

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

func newMarkdownEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
}

// renderMarkdown converts source to HTML. Raw HTML in the source is omitted by
// goldmark's safe renderer; on conversion failure the escaped text is returned.
func renderMarkdown(engine goldmark.Markdown, source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := engine.Convert([]byte(source), &buf); err != nil {
		return html.EscapeString(source)
	}
	return strings.TrimSpace(buf.String())
}
