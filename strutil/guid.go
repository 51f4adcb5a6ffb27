package strutil

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dushuaihua/Extensions/errors"
)

// GUIDFormat selects a textual GUID layout. The set is closed; any
// unrecognized specifier falls back to GUIDFormatD.
type GUIDFormat string

const (
	// GUIDFormatD is 32 hex digits separated by hyphens.
	GUIDFormatD GUIDFormat = "D"
	// GUIDFormatN is 32 contiguous hex digits.
	GUIDFormatN GUIDFormat = "N"
	// GUIDFormatP is the hyphenated form enclosed in parentheses.
	GUIDFormatP GUIDFormat = "P"
	// GUIDFormatB is the hyphenated form enclosed in braces.
	GUIDFormatB GUIDFormat = "B"
	// GUIDFormatX is the hexadecimal tuple form
	// {0x00000000,0x0000,0x0000,{0x00,...}}.
	GUIDFormatX GUIDFormat = "X"
)

// NormalizeGUIDFormat maps lower-case specifier variants onto their
// canonical members and anything unrecognized onto GUIDFormatD.
func NormalizeGUIDFormat(f GUIDFormat) GUIDFormat {
	switch f {
	case GUIDFormatD, GUIDFormatN, GUIDFormatP, GUIDFormatB, GUIDFormatX:
		return f
	case "d":
		return GUIDFormatD
	case "n":
		return GUIDFormatN
	case "p":
		return GUIDFormatP
	case "b":
		return GUIDFormatB
	case "x":
		return GUIDFormatX
	default:
		return GUIDFormatD
	}
}

// guidXRegex captures the twelve hexadecimal fields of the X layout.
var guidXRegex = regexp.MustCompile(`^\{0x([0-9a-fA-F]{1,8}),0x([0-9a-fA-F]{1,4}),0x([0-9a-fA-F]{1,4}),\{0x([0-9a-fA-F]{1,2}),0x([0-9a-fA-F]{1,2}),0x([0-9a-fA-F]{1,2}),0x([0-9a-fA-F]{1,2}),0x([0-9a-fA-F]{1,2}),0x([0-9a-fA-F]{1,2}),0x([0-9a-fA-F]{1,2}),0x([0-9a-fA-F]{1,2})\}\}$`)

// parseGUID strictly parses s against an already-normalized format.
func parseGUID(s string, format GUIDFormat) (uuid.UUID, bool) {
	switch format {
	case GUIDFormatN:
		if len(s) != 32 {
			return uuid.Nil, false
		}
	case GUIDFormatD:
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return uuid.Nil, false
		}
	case GUIDFormatP:
		if len(s) != 38 || s[0] != '(' || s[37] != ')' {
			return uuid.Nil, false
		}
		return parseGUID(s[1:37], GUIDFormatD)
	case GUIDFormatB:
		if len(s) != 38 || s[0] != '{' || s[37] != '}' {
			return uuid.Nil, false
		}
		return parseGUID(s[1:37], GUIDFormatD)
	case GUIDFormatX:
		return parseGUIDX(s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

func parseGUIDX(s string) (uuid.UUID, bool) {
	m := guidXRegex.FindStringSubmatch(s)
	if m == nil {
		return uuid.Nil, false
	}
	var u uuid.UUID
	a, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return uuid.Nil, false
	}
	binary.BigEndian.PutUint32(u[0:4], uint32(a))
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseUint(m[2+i], 16, 16)
		if err != nil {
			return uuid.Nil, false
		}
		binary.BigEndian.PutUint16(u[4+2*i:6+2*i], uint16(v))
	}
	for i := 0; i < 8; i++ {
		v, err := strconv.ParseUint(m[4+i], 16, 8)
		if err != nil {
			return uuid.Nil, false
		}
		u[8+i] = byte(v)
	}
	return u, true
}

// FormatGUID renders u in the given layout. Unrecognized specifiers
// fall back to the hyphenated D form.
func FormatGUID(u uuid.UUID, format GUIDFormat) string {
	switch NormalizeGUIDFormat(format) {
	case GUIDFormatN:
		return strings.ReplaceAll(u.String(), "-", "")
	case GUIDFormatP:
		return "(" + u.String() + ")"
	case GUIDFormatB:
		return "{" + u.String() + "}"
	case GUIDFormatX:
		return fmt.Sprintf("{0x%08x,0x%04x,0x%04x,{0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x}}",
			binary.BigEndian.Uint32(u[0:4]),
			binary.BigEndian.Uint16(u[4:6]),
			binary.BigEndian.Uint16(u[6:8]),
			u[8], u[9], u[10], u[11], u[12], u[13], u[14], u[15])
	default:
		return u.String()
	}
}

// IsGUID reports whether s parses strictly against the given format
// specifier. The default, and the fallback for unrecognized
// specifiers, is the hyphenated D form. The predicate is parse
// success, not format inference.
func IsGUID(s string, format ...GUIDFormat) bool {
	if IsBlank(s) {
		return false
	}
	f := GUIDFormatD
	if len(format) > 0 {
		f = NormalizeGUIDFormat(format[0])
	}
	_, ok := parseGUID(s, f)
	return ok
}

// ToGUID parses s against the given format specifier, normalizing an
// unrecognized specifier to D first. Blank or malformed input yields
// an InvalidFormat error naming the GUID target.
func ToGUID(s string, format ...GUIDFormat) (uuid.UUID, error) {
	f := GUIDFormatD
	if len(format) > 0 {
		f = NormalizeGUIDFormat(format[0])
	}
	if IsBlank(s) {
		return uuid.Nil, errors.InvalidFormat("GUID", s)
	}
	u, ok := parseGUID(s, f)
	if !ok {
		return uuid.Nil, errors.InvalidFormat("GUID", s).WithDetail("format", string(f))
	}
	return u, nil
}
