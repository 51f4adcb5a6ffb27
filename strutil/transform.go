package strutil

import (
	"strings"
	"unicode"
)

// defaultTruncateSuffix is appended when Truncate shortens a string
// and no explicit suffix was given.
const defaultTruncateSuffix = " ..."

// Reverse returns s with its runes in reverse order, or the empty
// string for blank input. Reversal happens per code point, not per
// grapheme cluster, so combining sequences may reorder.
func Reverse(s string) string {
	if IsBlank(s) {
		return ""
	}
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// Truncate returns s unchanged when its rune count does not exceed
// length; otherwise it keeps the first length runes and appends the
// suffix (default " ..."). A negative length is treated as zero, so
// non-empty input collapses to the suffix alone.
func Truncate(s string, length int, suffix ...string) string {
	if length < 0 {
		length = 0
	}
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	suf := defaultTruncateSuffix
	if len(suffix) > 0 {
		suf = suffix[0]
	}
	return string(r[:length]) + suf
}

// FirstCharToUpper upper-cases a single-rune string as a whole and,
// for longer input, only the first rune, leaving the remainder
// untouched.
func FirstCharToUpper(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) == 1 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// ReplaceSpecialChars keeps letters and digits and substitutes every
// other rune with the replacement. The zero rune, which is also the
// default, is a sentinel: special characters are deleted instead of
// substituted.
func ReplaceSpecialChars(s string, replacement ...rune) string {
	var rep rune
	if len(replacement) > 0 {
		rep = replacement[0]
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		if rep == 0 {
			return -1
		}
		return rep
	}, s)
}

// Mask hides all but a visible prefix of s for safe display. Strings
// no longer than the prefix are fully masked.
func Mask(s string, visible int) string {
	if visible < 0 {
		visible = 0
	}
	if len(s) <= visible {
		return "***"
	}
	return s[:visible] + "***"
}
