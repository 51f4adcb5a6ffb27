package strutil

import (
	"strings"
	"unicode"
)

// isBlankRune reports whether r belongs to the extended blank set:
// Unicode whitespace plus the C0 controls, DEL, NEL, and the line and
// paragraph separators. The set is fixed and shared by every trimming
// operation in this package.
func isBlankRune(r rune) bool {
	return unicode.IsSpace(r) || r <= 0x001F || r == 0x007F || r == 0x0085 || r == 0x2028 || r == 0x2029
}

// IsBlank reports whether s is empty or consists only of characters
// from the extended blank set. A string holding nothing but control
// characters counts as blank.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, isBlankRune) == ""
}

// TrimBlank returns the empty string when s is blank; otherwise it
// strips leading and trailing extended-blank characters and returns
// the remainder unchanged.
func TrimBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.TrimFunc(s, isBlankRune)
}

// TrimAll removes every extended-blank character from s, not just the
// ends.
func TrimAll(s string) string {
	return strings.Map(func(r rune) rune {
		if isBlankRune(r) {
			return -1
		}
		return r
	}, s)
}

// SafeTrim trims standard whitespace, returning the empty string for
// whitespace-only input.
func SafeTrim(s string) string {
	return strings.TrimSpace(s)
}

// StripControl trims standard whitespace and removes control
// characters from anywhere in s.
func StripControl(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
