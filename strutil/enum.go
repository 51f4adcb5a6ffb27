package strutil

import (
	"fmt"
	"strings"

	"github.com/dushuaihua/Extensions/errors"
)

// ToEnum matches s against the member-name table and returns the
// mapped value. Matching ignores case and surrounding whitespace; use
// ToEnumExact for case-sensitive matching. An empty member table is an
// InvalidArgument; a name with no member is an InvalidFormat naming
// the concrete enum type.
func ToEnum[E any](s string, members map[string]E) (E, error) {
	return toEnum(s, members, false)
}

// ToEnumExact is ToEnum with case-sensitive member-name matching.
func ToEnumExact[E any](s string, members map[string]E) (E, error) {
	return toEnum(s, members, true)
}

func toEnum[E any](s string, members map[string]E, exact bool) (E, error) {
	var zero E
	if len(members) == 0 {
		return zero, errors.InvalidArgument(fmt.Sprintf("%T is not an enumeration: member table is empty", zero))
	}
	if IsBlank(s) {
		return zero, errors.InvalidFormat(fmt.Sprintf("%T", zero), s)
	}
	name := strings.TrimSpace(s)
	if v, ok := members[name]; ok {
		return v, nil
	}
	if !exact {
		for k, v := range members {
			if strings.EqualFold(k, name) {
				return v, nil
			}
		}
	}
	return zero, errors.InvalidFormat(fmt.Sprintf("%T", zero), s)
}
