package util

// To returns a pointer to v. Handy for optional struct fields built from
// literals.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or fallback when p is nil
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}
