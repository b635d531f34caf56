package sanitizer

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of spaces, tabs and newlines into one space.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// KeepDigits keeps only ASCII digits. Other unicode digits are dropped
// because document numbers are always written with 0-9.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// MaskString preserves start/end characters for user recognition while hiding the middle.
// Strings too short to keep visibleChars on both sides are fully masked.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	start := string(runes[:visibleChars])
	end := string(runes[length-visibleChars:])
	return start + strings.Repeat("*", length-visibleChars*2) + end
}
