package utils

// Ptr returns a pointer to a copy of v, e.g. utils.Ptr(0) for an explicit zero
// in an optional setting.
func Ptr[T any](v T) *T {
	return &v
}
