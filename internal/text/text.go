// Package text holds pure formatting helpers for free-text fields.
package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	honorificRE  = regexp.MustCompile(`(?i)\b(ms|mr|mrs|dr)\.?\s*\w+`)
	wordStartRE  = regexp.MustCompile(`\b\w`)
)

// NormalizeWhitespace collapses runs of whitespace into single spaces
// and trims leading/trailing whitespace.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// CapitalizeFirst upper-cases the first letter of s.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// SmartCapitalize capitalizes honorifics (ms, mr, mrs, dr) together with
// the name that follows them, leaving the rest of the text alone.
func SmartCapitalize(s string) string {
	return honorificRE.ReplaceAllStringFunc(s, func(match string) string {
		return wordStartRE.ReplaceAllStringFunc(match, strings.ToUpper)
	})
}

// FormatForDisplay normalizes whitespace and capitalizes the first letter.
func FormatForDisplay(s string) string {
	return CapitalizeFirst(NormalizeWhitespace(s))
}
