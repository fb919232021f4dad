package sliceutil

// ==========================================
//  Pure Functions (Happy Path)
// ==========================================

// Filter returns a new slice holding the elements that satisfy predicate.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// Reduce folds the slice from left to right into a single value of type R.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	if len(collection) == 0 {
		return initial
	}
	_ = collection[len(collection)-1]

	result := initial
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}

// All reports whether every element satisfies predicate.
// It is vacuously true for an empty slice.
func All[T any](collection []T, predicate func(T) bool) bool {
	for _, v := range collection {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Flatten concatenates the given slices into one new slice,
// preserving the order within and across them.
func Flatten[T any](lists ...[]T) []T {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	res := make([]T, 0, total)
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}

// ==========================================
//  Zero / Nil Removal
// ==========================================

// Compact returns the elements that are not the zero value of T.
// For comparable types this drops 0, "", false and nil pointers alike;
// use CompactNil when only absent values should go.
func Compact[T comparable](collection []T) []T {
	var zero T
	return Filter(collection, func(v T) bool {
		return v != zero
	})
}

// CompactNil returns the non-nil pointers of collection, keeping pointers
// to zero values.
func CompactNil[T any](collection []*T) []*T {
	return Filter(collection, func(v *T) bool {
		return v != nil
	})
}
