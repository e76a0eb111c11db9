package readtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutes(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content floors at one", "", 1},
		{"few words", "just a handful of words", 1},
		{"exactly 200 words", strings.TrimSpace(strings.Repeat("word ", 200)), 1},
		{"201 words rounds up", strings.TrimSpace(strings.Repeat("word ", 201)), 2},
		{"250 words", strings.TrimSpace(strings.Repeat("word ", 250)), 2},
		{"600 words", strings.TrimSpace(strings.Repeat("word ", 600)), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Minutes(tc.content))
		})
	}
}

func TestWordCount_StripsMarkdown(t *testing.T) {
	content := "# Heading\n\nSome **bold** and _italic_ text."
	assert.Equal(t, 6, WordCount(content))
}

func TestWordCount_StripsHTML(t *testing.T) {
	content := "<p>hello <strong>big</strong> world</p>"
	assert.Equal(t, 3, WordCount(content))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Heading body text", PlainText("# Heading\n\nbody text"))
	assert.Equal(t, "", PlainText(""))
}
