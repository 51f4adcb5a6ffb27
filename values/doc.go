// Package values provides a typed lookup helper over string-keyed
// multi-value collections such as url.Values, decoded query strings,
// or HTTP headers flattened to map[string][]string.
//
// The single entry point, Get, returns a caller-supplied default when
// the key is absent or the stored text cannot be converted to the
// requested type, so call sites never branch on errors.
package values
