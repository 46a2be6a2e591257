// Package pointers has small helpers for optional values.
package pointers

// Ptr returns a pointer to v. Handy for literals going into nullable
// columns and optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
