package strutil

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/dushuaihua/Extensions/errors"
)

// defaultByteEncoding is the charset used by IsValidByteCount. GBK
// matches the platform default of the environments this library grew
// up in; IsValidByteCountIn accepts any other charset.
var defaultByteEncoding encoding.Encoding = simplifiedchinese.GBK

// checkLengthArgs validates the bounds and the presence of the input.
// Argument validation happens before any trimming.
func checkLengthArgs(s string, min, max int) error {
	if min < 0 {
		return errors.InvalidArgument("min must not be negative").WithDetail("min", min)
	}
	if max < min {
		return errors.InvalidArgument("max must not be less than min").WithDetail("min", min).WithDetail("max", max)
	}
	if s == "" {
		return errors.InvalidArgument("value must not be empty")
	}
	return nil
}

// IsValidLength reports whether the rune count of s lies within
// [min, max]. When trim is set the extended blank set is trimmed
// before measuring. Invalid bounds or empty input fail with an
// InvalidArgument error.
func IsValidLength(s string, min, max int, trim bool) (bool, error) {
	if err := checkLengthArgs(s, min, max); err != nil {
		return false, err
	}
	if trim {
		s = TrimBlank(s)
	}
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max, nil
}

// IsValidByteCount reports whether the encoded byte count of s lies
// within [min, max], measured in the default GBK charset.
func IsValidByteCount(s string, min, max int, trim bool) (bool, error) {
	return IsValidByteCountIn(s, min, max, trim, defaultByteEncoding)
}

// IsValidByteCountIn measures s in the given charset. Runes the
// charset cannot represent are counted as its substitute character.
func IsValidByteCountIn(s string, min, max int, trim bool, enc encoding.Encoding) (bool, error) {
	if err := checkLengthArgs(s, min, max); err != nil {
		return false, err
	}
	if trim {
		s = TrimBlank(s)
	}
	encoded, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return false, errors.InvalidFormat("byte count", s).WithCause(err)
	}
	n := len(encoded)
	return n >= min && n <= max, nil
}
