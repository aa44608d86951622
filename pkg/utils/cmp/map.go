package cmp

// MapEq detects two maps have the same keys and equal values.
func MapEq[K comparable, V comparable](a, b map[K]V) bool {
	return MapEqWith(a, b, func(x, y V) bool { return x == y })
}

// MapEqWith is MapEq with a custom value equality.
func MapEqWith[K comparable, V any, W any](a map[K]V, b map[K]W, eq func(V, W) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !eq(va, vb) {
			return false
		}
	}
	return true
}

// MapGeq detects a map contains another, i.e. every entry of needle
// is found equal in haystack.
func MapGeq[K comparable, V comparable](haystack, needle map[K]V) bool {
	return MapGeqWith(haystack, needle, func(x, y V) bool { return x == y })
}

// MapGeqWith is MapGeq with a custom value equality.
func MapGeqWith[K comparable, V any, W any](haystack map[K]V, needle map[K]W, eq func(V, W) bool) bool {
	for k, vn := range needle {
		vh, ok := haystack[k]
		if !ok || !eq(vh, vn) {
			return false
		}
	}
	return true
}

// MapLeq detects a map is contained in another, i.e. every entry of
// needle is found equal in haystack.
func MapLeq[K comparable, V comparable](needle, haystack map[K]V) bool {
	return MapLeqWith(needle, haystack, func(x, y V) bool { return x == y })
}

// MapLeqWith is MapLeq with a custom value equality.
func MapLeqWith[K comparable, V any, W any](needle map[K]V, haystack map[K]W, eq func(V, W) bool) bool {
	for k, vn := range needle {
		vh, ok := haystack[k]
		if !ok || !eq(vn, vh) {
			return false
		}
	}
	return true
}

// MapMatch tests a map with per-key predicators.
// It is true when m and predicators have the same key set and
// every predicator accepts the value at its key.
func MapMatch[K comparable, V any](m map[K]V, predicators map[K]func(V) bool) bool {
	if len(m) != len(predicators) {
		return false
	}
	ok := true
	for k, pred := range predicators {
		v, found := m[k]
		if !found {
			ok = false
			continue
		}
		if !pred(v) {
			ok = false
		}
	}
	return ok
}
