package sliceutil

// UniqueLast returns the distinct elements of collection, each placed at the
// position of its last occurrence. The input is not modified.
//
//	UniqueLast([]int{1, 2, 1, 3, 2}) // [1 3 2]
func UniqueLast[T comparable](collection []T) []T {
	return UniqueLastBy(collection, func(v T) T { return v })
}

// UniqueLastBy is UniqueLast with a key selector.
// Useful for non-comparable types or custom uniqueness logic.
func UniqueLastBy[T any, K comparable](collection []T, keySelector func(T) K) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Walk backwards so the first sighting of a key is its last occurrence,
	// then restore the original order.
	seen := make(map[K]struct{}, len(collection))
	reversed := make([]T, 0, len(collection))
	for i := len(collection) - 1; i >= 0; i-- {
		k := keySelector(collection[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		reversed = append(reversed, collection[i])
	}

	result := make([]T, len(reversed))
	for i, v := range reversed {
		result[len(reversed)-1-i] = v
	}
	return result
}

// Update merges b into a: the elements of a that are not in b, in a's order,
// followed by all of b in its own order. Duplicates are removed from a only.
//
//	Update([]int{1, 2, 3}, []int{2, 4}) // [1 3 2 4]
func Update[T comparable](a, b []T) []T {
	result := make([]T, 0, len(a)+len(b))
	result = append(result, DifferenceUpdate(a, b)...)
	return append(result, b...)
}

// UpdateFunc is Update for element types without ==, using eq for membership.
// It scans b for every element of a, so keep the inputs small.
func UpdateFunc[T any](a, b []T, eq func(x, y T) bool) []T {
	result := make([]T, 0, len(a)+len(b))
	result = append(result, DifferenceUpdateFunc(a, b, eq)...)
	return append(result, b...)
}

// DifferenceUpdate returns the elements of a that are not in b, in a's order.
// Unlike Difference, repeated elements of a are kept.
func DifferenceUpdate[T comparable](a, b []T) []T {
	if len(a) == 0 {
		return []T{}
	}

	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}

	result := make([]T, 0, len(a))
	_ = a[len(a)-1]
	for _, v := range a {
		if _, found := exclude[v]; !found {
			result = append(result, v)
		}
	}
	return result
}

// DifferenceUpdateFunc is DifferenceUpdate using eq for membership.
func DifferenceUpdateFunc[T any](a, b []T, eq func(x, y T) bool) []T {
	if len(a) == 0 {
		return []T{}
	}

	result := make([]T, 0, len(a))
	_ = a[len(a)-1]
	for _, v := range a {
		if !ContainsFunc(b, func(w T) bool { return eq(v, w) }) {
			result = append(result, v)
		}
	}
	return result
}
