package strutil

// Numeric predicates attempt a strict parse and report success. They
// never return an error; every parse failure, blank input included,
// simply yields false. An optional NumberStyles mask widens or narrows
// what the parse accepts.

// IsByte reports whether s parses as an 8-bit unsigned integer.
func IsByte(s string, styles ...NumberStyles) bool {
	if IsBlank(s) {
		return false
	}
	_, ok := tryParseUint(s, styleOr(styles, StylesInteger), 8)
	return ok
}

// IsInt16 reports whether s parses as a 16-bit signed integer.
func IsInt16(s string, styles ...NumberStyles) bool {
	if IsBlank(s) {
		return false
	}
	_, ok := tryParseInt(s, styleOr(styles, StylesInteger), 16)
	return ok
}

// IsInt32 reports whether s parses as a 32-bit signed integer.
func IsInt32(s string, styles ...NumberStyles) bool {
	if IsBlank(s) {
		return false
	}
	_, ok := tryParseInt(s, styleOr(styles, StylesInteger), 32)
	return ok
}

// IsInt64 reports whether s parses as a 64-bit signed integer.
func IsInt64(s string, styles ...NumberStyles) bool {
	if IsBlank(s) {
		return false
	}
	_, ok := tryParseInt(s, styleOr(styles, StylesInteger), 64)
	return ok
}

// IsDecimal reports whether s parses as a 96-bit decimal value.
func IsDecimal(s string, styles ...NumberStyles) bool {
	if IsBlank(s) {
		return false
	}
	_, ok := tryParseDecimal(s, styleOr(styles, StylesNumber))
	return ok
}

// IsFloat reports whether s parses as a 64-bit floating-point value.
func IsFloat(s string, styles ...NumberStyles) bool {
	if IsBlank(s) {
		return false
	}
	_, ok := tryParseFloat(s, styleOr(styles, StylesFloat), 64)
	return ok
}
