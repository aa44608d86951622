package slices

// Map converts []T to []R, applying mapper on each element.
func Map[T any, R any](sli []T, mapper func(T) R) []R {
	if sli == nil {
		return nil
	}
	mapped := make([]R, len(sli))
	for i, item := range sli {
		mapped[i] = mapper(item)
	}
	return mapped
}

// First finds the first element which satisfies the predicate.
//
// The second return value is false when no element matches.
func First[T any](sli []T, predicate func(T) bool) (T, bool) {
	for _, item := range sli {
		if predicate(item) {
			return item, true
		}
	}
	return *new(T), false
}

// Contains reports whether any element satisfies the predicate.
func Contains[T any](sli []T, predicate func(T) bool) bool {
	_, ok := First(sli, predicate)
	return ok
}

// KeysOf collects keys of a map. Order is not specified.
func KeysOf[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// ValuesOf collects values of a map. Order is not specified.
func ValuesOf[K comparable, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}
