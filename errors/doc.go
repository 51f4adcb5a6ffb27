// Package errors provides the error types shared by the Extensions
// utility packages.
//
// Only two kinds of failure exist in this library: the caller passed a
// structurally invalid argument, or an input string failed to parse as
// the requested format. Both are represented by *Error carrying a
// machine-readable ErrorCode.
package errors
