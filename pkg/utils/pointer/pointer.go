package pointer

func Ref[T any](t T) *T {
	return &t
}

func Deref[T any](ptr *T) T {
	return *ptr
}

func SafeDeref[T any](val *T) T {
	if val == nil {
		return *new(T)
	}
	return *val
}

// Equal detects two pointers are both nil or point to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
