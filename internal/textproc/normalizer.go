// Package textproc cleans raw Reddit comment text for sentiment scoring.
package textproc

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
	urlPattern          = regexp.MustCompile(`http\S+|www\S+`)
	mentionPattern      = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	// Anything that is not a letter, digit, underscore or whitespace.
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// Flatten renders Reddit-flavored markdown to plain text. Inline links keep
// their label and lose their target.
func Flatten(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")

	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(output), " ")
	plain = html.UnescapeString(plain)

	return strings.Join(strings.Fields(plain), " ")
}

// Normalize lowercases the input, strips URLs, @mentions and punctuation,
// then drops stop words and single-character tokens. The surviving tokens
// are rejoined with single spaces. Empty input yields an empty string.
func Normalize(raw string) string {
	text := strings.ToLower(raw)
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = punctPattern.ReplaceAllString(text, "")

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if isStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}
