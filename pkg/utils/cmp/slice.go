package cmp

// SliceEq detects two slices have equal elements in the same order.
func SliceEq[T comparable](a, b []T) bool {
	return SliceEqWith(a, b, func(x, y T) bool { return x == y })
}

// SliceEqWith is SliceEq with a custom equality.
func SliceEqWith[T any, U any](a []T, b []U, eq func(T, U) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SliceContains detects haystack contains needle as a contiguous
// subsequence. Empty needle is found in any haystack.
func SliceContains[T comparable](haystack, needle []T) bool {
	if len(needle) == 0 {
		return true
	}
	for start := 0; start+len(needle) <= len(haystack); start++ {
		if SliceEq(haystack[start:start+len(needle)], needle) {
			return true
		}
	}
	return false
}

// SliceSubsetWith detects that each element in sub matches a distinct
// element in super, ignoring order.
func SliceSubsetWith[T any, U any](super []T, sub []U, eq func(T, U) bool) bool {
	used := make([]bool, len(super))
	for _, x := range sub {
		found := false
		for i, y := range super {
			if used[i] {
				continue
			}
			if eq(y, x) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SliceContentEq detects two slices have the same elements,
// ignoring order (as multisets).
func SliceContentEq[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	rest := make([]T, len(b))
	copy(rest, b)
	for _, x := range a {
		found := -1
		for i, y := range rest {
			if x == y {
				found = i
				break
			}
		}
		if found < 0 {
			return false
		}
		rest = append(rest[:found], rest[found+1:]...)
	}
	return true
}

// SliceContentEqWith is SliceContentEq with a custom equality.
func SliceContentEqWith[T any, U any](a []T, b []U, eq func(T, U) bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if eq(x, y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
