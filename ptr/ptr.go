package ptr

// To returns a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// DerefOr returns the value pointed to by p, or def if p is nil.
func DerefOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}

// FromString returns a pointer to s, or nil when s is empty.
func FromString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
