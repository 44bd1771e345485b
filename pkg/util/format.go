package util

import (
	"regexp"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^[0-9]+$`)

var jsStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// FormatJSString renders s as a double-quoted JavaScript string literal.
// Plain values come out unchanged between the quotes.
func FormatJSString(s string) string {
	return `"` + jsStringEscaper.Replace(s) + `"`
}

// FormatJSNumber renders s as a bare numeric literal when it is a decimal
// integer, and as a quoted string otherwise so the file still parses.
func FormatJSNumber(s string) string {
	if decimalPattern.MatchString(s) {
		return s
	}
	return FormatJSString(s)
}
