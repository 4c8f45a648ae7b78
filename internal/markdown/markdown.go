// Package markdown converts Markdown bodies to HTML fragments for embedding
// in the generated page.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Converter wraps a configured goldmark instance. Content is trusted as
// authored by the site owner, so raw HTML passes through unmodified.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a converter with GFM tables/fenced code and hard
// wraps, matching the editor-line rendering model of the client UI.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
				gmhtml.WithUnsafe(),
			),
		),
	}
}

// ToHTML converts a Markdown body (frontmatter already removed) to HTML.
func (c *Converter) ToHTML(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToHTMLLines converts a Markdown body to HTML and splits the result into
// its non-blank lines. Each returned line is one pre-rendered fragment.
func (c *Converter) ToHTMLLines(body []byte) ([]string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	html, err := c.ToHTML(body)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(html, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// PlainLines splits raw text into its non-blank lines. It is the fallback
// when Markdown conversion fails.
func PlainLines(body []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(body), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines
}
