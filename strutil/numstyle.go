package strutil

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// NumberStyles is a bitmask selecting which textual variations a
// numeric parse accepts: surrounding whitespace, signs, decimal
// points, thousands separators, exponents, or hexadecimal digits.
type NumberStyles uint

const (
	// StylesNone accepts bare digits only.
	StylesNone NumberStyles = 0

	// AllowLeadingWhite permits leading whitespace.
	AllowLeadingWhite NumberStyles = 1 << 0
	// AllowTrailingWhite permits trailing whitespace.
	AllowTrailingWhite NumberStyles = 1 << 1
	// AllowLeadingSign permits a leading + or -.
	AllowLeadingSign NumberStyles = 1 << 2
	// AllowTrailingSign permits a trailing + or -.
	AllowTrailingSign NumberStyles = 1 << 3
	// AllowParentheses permits a negative value written as (n).
	AllowParentheses NumberStyles = 1 << 4
	// AllowDecimalPoint permits a fractional part.
	AllowDecimalPoint NumberStyles = 1 << 5
	// AllowThousands permits comma group separators between digits.
	AllowThousands NumberStyles = 1 << 6
	// AllowExponent permits scientific notation.
	AllowExponent NumberStyles = 1 << 7
	// AllowHexSpecifier treats the input as bare hexadecimal digits.
	// It cannot be combined with signs, separators, or fractions.
	AllowHexSpecifier NumberStyles = 1 << 8

	// StylesInteger is the default for integer parses.
	StylesInteger = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	// StylesNumber is the default for decimal parses. Thousands
	// separators are not accepted unless requested explicitly.
	StylesNumber = StylesInteger | AllowTrailingSign | AllowDecimalPoint
	// StylesFloat is the default for floating-point parses.
	StylesFloat = StylesInteger | AllowDecimalPoint | AllowExponent
	// StylesHexNumber parses bare hexadecimal digits.
	StylesHexNumber = AllowLeadingWhite | AllowTrailingWhite | AllowHexSpecifier
)

// styleOr returns the first explicit style, or def when none was given.
func styleOr(styles []NumberStyles, def NumberStyles) NumberStyles {
	if len(styles) > 0 {
		return styles[0]
	}
	return def
}

// tryNormalize validates s against the style mask and rewrites it into
// the canonical form strconv understands. It never panics and reports
// failure through ok instead of an error.
func tryNormalize(s string, style NumberStyles) (text string, ok bool) {
	if style&AllowLeadingWhite != 0 {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	if style&AllowTrailingWhite != 0 {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	}
	if s == "" {
		return "", false
	}

	neg := false
	signed := false
	if style&AllowParentheses != 0 && len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		neg, signed = true, true
		s = s[1 : len(s)-1]
		if s == "" {
			return "", false
		}
	}
	if s[0] == '+' || s[0] == '-' {
		if style&AllowLeadingSign == 0 || signed {
			return "", false
		}
		neg = s[0] == '-'
		signed = true
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '+' || s[n-1] == '-') {
		if style&AllowTrailingSign == 0 || signed {
			return "", false
		}
		neg = s[n-1] == '-'
		s = s[:n-1]
	}

	var b strings.Builder
	b.Grow(len(s) + 1)
	seenDigit, seenPoint, seenExp := false, false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			b.WriteByte(c)
		case c == ',':
			// Separators sit between integral digits only.
			if style&AllowThousands == 0 || !seenDigit || seenPoint || seenExp {
				return "", false
			}
			if i+1 >= len(s) || s[i+1] < '0' || s[i+1] > '9' {
				return "", false
			}
		case c == '.':
			if style&AllowDecimalPoint == 0 || seenPoint || seenExp {
				return "", false
			}
			seenPoint = true
			b.WriteByte('.')
		case c == 'e' || c == 'E':
			if style&AllowExponent == 0 || seenExp || !seenDigit {
				return "", false
			}
			seenExp = true
			b.WriteByte('e')
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
				b.WriteByte(s[i])
			}
			if i+1 >= len(s) || s[i+1] < '0' || s[i+1] > '9' {
				return "", false
			}
		default:
			return "", false
		}
	}
	if !seenDigit {
		return "", false
	}
	text = b.String()
	if neg {
		text = "-" + text
	}
	return text, true
}

// tryParseHex reads bare hexadecimal digits, honoring only the
// whitespace bits of the style mask.
func tryParseHex(s string, style NumberStyles, bitSize int) (uint64, bool) {
	if style&AllowLeadingWhite != 0 {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	if style&AllowTrailingWhite != 0 {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	}
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 16, bitSize)
	return v, err == nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func tryParseInt(s string, style NumberStyles, bitSize int) (int64, bool) {
	if style&AllowHexSpecifier != 0 {
		v, ok := tryParseHex(s, style, bitSize)
		return int64(v), ok
	}
	t, ok := tryNormalize(s, style)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(t, 10, bitSize)
	return v, err == nil
}

func tryParseUint(s string, style NumberStyles, bitSize int) (uint64, bool) {
	if style&AllowHexSpecifier != 0 {
		return tryParseHex(s, style, bitSize)
	}
	t, ok := tryNormalize(s, style)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(t, 10, bitSize)
	return v, err == nil
}

func tryParseFloat(s string, style NumberStyles, bitSize int) (float64, bool) {
	t, ok := tryNormalize(s, style)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(t, bitSize)
	return v, err == nil
}

// decimalMax is the largest magnitude a 96-bit decimal can hold.
var decimalMax = decimal.RequireFromString("79228162514264337593543950335")

func tryParseDecimal(s string, style NumberStyles) (decimal.Decimal, bool) {
	t, ok := tryNormalize(s, style)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(t)
	if err != nil || d.Abs().GreaterThan(decimalMax) {
		return decimal.Decimal{}, false
	}
	return d, true
}
