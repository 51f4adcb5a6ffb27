// Package strutil provides string extension utilities for Extensions
// consumers.
//
// It includes blank-aware trimming, format predicates (email, mobile
// numbers, URLs, GUIDs, culture identifiers), strict and defaulted
// type coercion, and small structural transforms. Every function is a
// pure, stateless operation over its arguments and is safe for
// concurrent use.
package strutil
