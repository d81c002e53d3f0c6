// Package htmltomarkdown converts search result snippets from HTML to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/pantry"
)

// DefaultMaxLength caps a converted snippet, in runes.
const DefaultMaxLength = 300

// Ensure Converter implements pantry.Converter at compile time.
var _ pantry.Converter = (*Converter)(nil)

// Converter turns search snippet HTML into one line of Markdown, keeping
// emphasis so the engine's highlighted matches reach the model.
type Converter struct {
	conv *converter.Converter

	// MaxLength caps the output in runes. Zero means DefaultMaxLength;
	// a negative value disables the cap.
	MaxLength int
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into single-line Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pantry.Errorf(pantry.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return truncate(strings.Join(strings.Fields(result), " "), c.maxLength()), nil
}

func (c *Converter) maxLength() int {
	if c.MaxLength == 0 {
		return DefaultMaxLength
	}
	return c.MaxLength
}

// truncate cuts s to at most limit runes, backing up to a word boundary.
func truncate(s string, limit int) string {
	if limit < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
