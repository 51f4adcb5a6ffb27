// Package ptr provides null-safety helpers for moving between values
// and pointers without nil checks at call sites.
package ptr
