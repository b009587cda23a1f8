// Package parser provides readers for the skill workbook and text cleanup helpers.
package parser

import "strings"

// fullWidthColon separates a label from its content in skill sheet cells.
const fullWidthColon = "："

var bracketStripper = strings.NewReplacer(
	"【", "", "】", "",
	"[", "", "]", "",
	"（", "", "）", "",
	"(", "", ")", "",
)

// StripBrackets removes every 【】[]（）() character and trims surrounding whitespace.
func StripBrackets(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(bracketStripper.Replace(text))
}

// AfterColon returns the trimmed text after the first full-width colon,
// or the trimmed input when there is no colon.
func AfterColon(text string) string {
	if text == "" {
		return ""
	}
	if _, after, found := strings.Cut(text, fullWidthColon); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(text)
}
