package news

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	descriptionLimit = 300
	ellipsis         = "..."
)

var imgSrcPattern = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)

// StripTags returns the concatenated text content of markup, with
// character references decoded.
func StripTags(markup string) string {
	var sb strings.Builder

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

// Truncate cuts text to the first limit characters and appends an
// ellipsis only when something was cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + ellipsis
}

// FirstImageSrc returns the src of the first img tag in markup, or "".
func FirstImageSrc(markup string) string {
	m := imgSrcPattern.FindStringSubmatch(markup)
	if m == nil {
		return ""
	}
	return m[1]
}

func cleanDescription(raw string) string {
	return Truncate(StripTags(raw), descriptionLimit)
}
