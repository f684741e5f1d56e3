// Package messaging builds links that open an external chat app with a
// pre-filled message.
package messaging

import (
	"net/url"
	"strings"
	"unicode"
)

const waBase = "https://wa.me/"

// DeepLink returns a wa.me link for number with text pre-filled. Formatting
// characters in number are dropped; text is escaped like encodeURIComponent.
func DeepLink(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)

	link := waBase + digits
	if text == "" {
		return link
	}
	return link + "?text=" + encodeComponent(text)
}

// componentUnescaper restores the characters encodeURIComponent leaves alone.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Linker holds the business number and default greeting.
type Linker struct {
	Number   string
	Greeting string
}

// Link builds a deep link, using the default greeting when text is blank.
func (l Linker) Link(text string) string {
	if strings.TrimSpace(text) == "" {
		text = l.Greeting
	}
	return DeepLink(l.Number, text)
}
