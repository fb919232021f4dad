package sliceutil

// Contains reports whether target is an element of collection.
func Contains[T comparable](collection []T, target T) bool {
	return FindIndex(collection, func(v T) bool { return v == target }) >= 0
}

// ContainsFunc reports whether any element satisfies predicate.
// It is the membership test of the *Func helpers for types without ==.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	return FindIndex(collection, predicate) >= 0
}

// Find returns the first element that satisfies predicate.
// The boolean is false, and the element the zero value, when none does.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	if i := FindIndex(collection, predicate); i >= 0 {
		return collection[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element that satisfies predicate,
// or -1.
func FindIndex[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1] // BCE hint

	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}
