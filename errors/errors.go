package errors

import "fmt"

// Error is the unified error type for the Extensions packages.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// InvalidArgument creates a new Error for a structurally invalid parameter.
func InvalidArgument(reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("Invalid argument: %s", reason),
	}
}

// InvalidFormat creates a new Error for a value that cannot be read as
// the named target type. The message always names the target.
func InvalidFormat(target, value string) *Error {
	return &Error{
		Code:    ErrCodeInvalidFormat,
		Message: fmt.Sprintf("Invalid format for %s: %q", target, value),
		Details: map[string]any{"target": target, "value": value},
	}
}

// CodeOf returns the ErrorCode carried by err, or the empty code when
// err is nil or not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if As(err, &e) {
		return e.Code
	}
	return ""
}

// IsInvalidArgument reports whether err carries ErrCodeInvalidArgument.
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == ErrCodeInvalidArgument
}

// IsInvalidFormat reports whether err carries ErrCodeInvalidFormat.
func IsInvalidFormat(err error) bool {
	return CodeOf(err) == ErrCodeInvalidFormat
}
