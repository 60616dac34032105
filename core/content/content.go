package content

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownFromHTML converts an HTML document into Markdown suitable for use
// as prompt context. Bedrock text-completion models take flat prompts, and
// Markdown preserves document structure (headings, lists, links) at a
// fraction of the token cost of raw HTML.
func MarkdownFromHTML(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// ClampRunes shortens s to at most maxRunes runes, appending an ellipsis
// marker when content was dropped. Use it to keep assembled prompt context
// inside a model's input budget. A non-positive maxRunes returns s
// unchanged.
func ClampRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "\n\n[... truncated]"
}
