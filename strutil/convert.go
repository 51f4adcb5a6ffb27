package strutil

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/dushuaihua/Extensions/errors"
)

// Strict conversions fail with an InvalidFormat error naming the
// target type whenever the input is blank or unparsable. The ...Or
// variants never fail: every parse error yields the caller default.

// ToByte converts s to an 8-bit unsigned integer.
func ToByte(s string) (byte, error) {
	v, ok := tryParseUint(s, StylesInteger, 8)
	if !ok {
		return 0, errors.InvalidFormat("byte", s)
	}
	return byte(v), nil
}

// ToByteOr converts s to a byte, returning def on any parse failure.
func ToByteOr(s string, def byte) byte {
	if v, err := ToByte(s); err == nil {
		return v
	}
	return def
}

// ToInt16 converts s to a 16-bit signed integer.
func ToInt16(s string) (int16, error) {
	v, ok := tryParseInt(s, StylesInteger, 16)
	if !ok {
		return 0, errors.InvalidFormat("int16", s)
	}
	return int16(v), nil
}

// ToInt16Or converts s to an int16, returning def on any parse failure.
func ToInt16Or(s string, def int16) int16 {
	if v, err := ToInt16(s); err == nil {
		return v
	}
	return def
}

// ToInt32 converts s to a 32-bit signed integer.
func ToInt32(s string) (int32, error) {
	v, ok := tryParseInt(s, StylesInteger, 32)
	if !ok {
		return 0, errors.InvalidFormat("int32", s)
	}
	return int32(v), nil
}

// ToInt32Or converts s to an int32, returning def on any parse failure.
func ToInt32Or(s string, def int32) int32 {
	if v, err := ToInt32(s); err == nil {
		return v
	}
	return def
}

// ToInt64 converts s to a 64-bit signed integer.
func ToInt64(s string) (int64, error) {
	v, ok := tryParseInt(s, StylesInteger, 64)
	if !ok {
		return 0, errors.InvalidFormat("int64", s)
	}
	return v, nil
}

// ToInt64Or converts s to an int64, returning def on any parse failure.
func ToInt64Or(s string, def int64) int64 {
	if v, err := ToInt64(s); err == nil {
		return v
	}
	return def
}

// ToFloat64 converts s to a 64-bit floating-point value.
func ToFloat64(s string) (float64, error) {
	v, ok := tryParseFloat(s, StylesFloat, 64)
	if !ok {
		return 0, errors.InvalidFormat("float64", s)
	}
	return v, nil
}

// ToFloat64Or converts s to a float64, returning def on any parse
// failure.
func ToFloat64Or(s string, def float64) float64 {
	if v, err := ToFloat64(s); err == nil {
		return v
	}
	return def
}

// ToDecimal converts s to a decimal value within the 96-bit range.
func ToDecimal(s string) (decimal.Decimal, error) {
	v, ok := tryParseDecimal(s, StylesNumber)
	if !ok {
		return decimal.Decimal{}, errors.InvalidFormat("decimal", s)
	}
	return v, nil
}

// ToTime converts s to a time.Time, accepting the common date and
// timestamp layouts.
func ToTime(s string) (time.Time, error) {
	if IsBlank(s) {
		return time.Time{}, errors.InvalidFormat("time.Time", s)
	}
	t, err := cast.ToTimeE(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.InvalidFormat("time.Time", s).WithCause(err)
	}
	return t, nil
}

// ToTimeOr converts s to a time.Time, returning def on any parse
// failure.
func ToTimeOr(s string, def time.Time) time.Time {
	if t, err := ToTime(s); err == nil {
		return t
	}
	return def
}
