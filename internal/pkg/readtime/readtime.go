// Package readtime derives the estimated reading time of article content.
// Content may be Markdown or raw HTML; both are reduced to plain text before
// counting words.
package readtime

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

var (
	// WithUnsafe keeps raw HTML blocks in the output so the strip pass sees
	// their text instead of an "omitted" placeholder.
	md      = goldmark.New(goldmark.WithRendererOptions(htmlrenderer.WithUnsafe()))
	tagRe   = regexp.MustCompile(`<[^>]*>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Minutes returns max(1, ceil(wordCount/200)) for the given content.
func Minutes(content string) int {
	words := WordCount(content)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// WordCount counts whitespace-separated words in the plain text of content.
func WordCount(content string) int {
	plain := PlainText(content)
	if plain == "" {
		return 0
	}
	return len(spaceRe.Split(plain, -1))
}

// PlainText renders Markdown to HTML and strips all tags. Raw HTML input
// passes through the renderer untouched, so a single strip pass covers both.
func PlainText(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		buf.Reset()
		buf.WriteString(content)
	}
	stripped := tagRe.ReplaceAllString(buf.String(), " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(stripped, " "))
}
