package domain

import (
	"strings"

	"golang.org/x/net/html"
)

// MapURL returns the src of the first <iframe> in the post's map embed
// snippet, or nil when there is none.
func (p *Post) MapURL() *string {
	return ExtractMapURL(p.MapEmbed)
}

// ExtractMapURL pulls the iframe src out of an embed HTML snippet.
// Returns nil for empty input, input without an iframe, or an iframe
// without a non-empty src attribute.
func ExtractMapURL(snippet string) *string {
	if strings.TrimSpace(snippet) == "" {
		return nil
	}

	z := html.NewTokenizer(strings.NewReader(snippet))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "iframe" {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key == "src" && strings.TrimSpace(attr.Val) != "" {
					src := strings.TrimSpace(attr.Val)
					return &src
				}
			}
			return nil
		}
	}
}
