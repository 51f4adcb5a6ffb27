package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a structurally invalid parameter:
	// a negative length bound, max below min, an empty enum member set,
	// or a required value that is absent where no default exists.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidFormat indicates an input string that failed to
	// parse or match the target format or type.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)
