package sliceutil

// Batch is a maximal run of consecutive items sharing one property value.
type Batch[T any, P any] struct {
	Items []T
	Prop  P
}

// BatchBy groups consecutive items whose prop values are equal.
// Concatenating the Items of the returned batches gives back items.
// prop is called exactly once per item.
//
//	BatchBy([]int{1, 1, 2, 2, 2, 3}, identity)
//	// [{[1 1] 1} {[2 2 2] 2} {[3] 3}]
func BatchBy[T any, P comparable](items []T, prop func(T) P) []Batch[T, P] {
	return BatchByFunc(items, prop, func(a, b P) bool { return a == b })
}

// BatchByFunc is BatchBy with a custom equality on property values.
// eq must be reflexive and transitive, otherwise the grouping is undefined.
func BatchByFunc[T any, P any](items []T, prop func(T) P, eq func(a, b P) bool) []Batch[T, P] {
	if len(items) == 0 {
		return []Batch[T, P]{}
	}
	// BCE hint: avoid bounds check in loop
	_ = items[len(items)-1]

	var batches []Batch[T, P]
	start := 0
	curr := prop(items[0])
	for i := 1; i < len(items); i++ {
		p := prop(items[i])
		if eq(p, curr) {
			continue
		}
		batches = append(batches, newBatch(items[start:i], curr))
		start, curr = i, p
	}
	return append(batches, newBatch(items[start:], curr))
}

// newBatch copies run so that batches never alias the caller's slice.
func newBatch[T, P any](run []T, p P) Batch[T, P] {
	items := make([]T, len(run))
	copy(items, run)
	return Batch[T, P]{Items: items, Prop: p}
}

// Unbatch concatenates the items of batches in order.
func Unbatch[T any, P any](batches []Batch[T, P]) []T {
	return Flatten(Map(batches, func(b Batch[T, P]) []T { return b.Items })...)
}
