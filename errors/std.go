package errors

import stderrors "errors"

// Is reports whether any error in err's chain matches target.
// It mirrors the standard library so callers need a single import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
