package values

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cast"
)

// Get returns the first value stored under key converted to T. An
// absent key, a key with no values, or a value that does not convert
// all yield def; conversion is never attempted for absent keys.
//
// Supported targets are string, bool, the signed and unsigned integer
// kinds, float32, float64, time.Time, time.Duration, and []string
// (which receives a copy of every value under the key).
func Get[M ~map[string][]string, T any](m M, key string, def T) T {
	vals, ok := lookup(m, key)
	if !ok {
		return def
	}
	if _, wantAll := any(def).([]string); wantAll {
		out := make([]string, len(vals))
		copy(out, vals)
		return any(out).(T)
	}
	v, err := convert[T](vals[0])
	if err != nil {
		return def
	}
	return v
}

// Has reports whether key appears in the collection's key set.
func Has[M ~map[string][]string](m M, key string) bool {
	for k := range m {
		if k == key {
			return true
		}
	}
	return false
}

// First returns the raw first value under key.
func First[M ~map[string][]string](m M, key string) (string, bool) {
	vals, ok := lookup(m, key)
	if !ok {
		return "", false
	}
	return vals[0], true
}

// Keys returns the sorted key set of the collection.
func Keys[M ~map[string][]string](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// lookup scans the key set and returns the non-empty value slice for
// key. A present key with no values counts as absent.
func lookup[M ~map[string][]string](m M, key string) ([]string, bool) {
	if !Has(m, key) {
		return nil, false
	}
	vals := m[key]
	if len(vals) == 0 {
		return nil, false
	}
	return vals, true
}

// convert dispatches on the concrete target type; each branch uses the
// non-throwing cast conversion for that kind.
func convert[T any](raw string) (T, error) {
	var zero T
	var out any
	var err error
	switch any(zero).(type) {
	case string:
		out = raw
	case bool:
		out, err = cast.ToBoolE(raw)
	case int:
		out, err = cast.ToIntE(raw)
	case int8:
		out, err = cast.ToInt8E(raw)
	case int16:
		out, err = cast.ToInt16E(raw)
	case int32:
		out, err = cast.ToInt32E(raw)
	case int64:
		out, err = cast.ToInt64E(raw)
	case uint:
		out, err = cast.ToUintE(raw)
	case uint8:
		out, err = cast.ToUint8E(raw)
	case uint16:
		out, err = cast.ToUint16E(raw)
	case uint32:
		out, err = cast.ToUint32E(raw)
	case uint64:
		out, err = cast.ToUint64E(raw)
	case float32:
		out, err = cast.ToFloat32E(raw)
	case float64:
		out, err = cast.ToFloat64E(raw)
	case time.Time:
		out, err = cast.ToTimeE(raw)
	case time.Duration:
		out, err = cast.ToDurationE(raw)
	default:
		return zero, fmt.Errorf("unsupported target type %T", zero)
	}
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}
