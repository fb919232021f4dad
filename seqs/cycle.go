package seqs

import "iter"

// AdjacentPairs returns the edges of a cycle through s: (s[i], s[i+1]) for
// every i, then the wrap-around pair (s[len(s)-1], s[0]). A single element is
// paired with itself.
//
// The sequence is lazy and can be ranged over any number of times.
// AdjacentPairs panics if s is empty, since the wrap-around pair does not exist.
func AdjacentPairs[T any](s []T) iter.Seq[Pair[T, T]] {
	if len(s) == 0 {
		panic("seqs.AdjacentPairs: empty input")
	}
	return func(yield func(Pair[T, T]) bool) {
		for i := range s {
			next := s[(i+1)%len(s)]
			if !yield(Pair[T, T]{s[i], next}) {
				return
			}
		}
	}
}

// Cycle repeats s from its start forever. Bound it with Take.
// An empty s yields nothing.
func Cycle[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(s) == 0 {
			return
		}
		for {
			for _, v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// RunsBy is the streaming form of sliceutil.BatchBy. It yields each maximal
// run of consecutive elements with equal prop values, together with that value.
// Every yielded run is a fresh slice the consumer may keep.
func RunsBy[T any, P comparable](seq iter.Seq[T], prop func(T) P) iter.Seq2[[]T, P] {
	return func(yield func([]T, P) bool) {
		var (
			run  []T
			curr P
		)
		for v := range seq {
			p := prop(v)
			if len(run) > 0 && p != curr {
				if !yield(run, curr) {
					return
				}
				run = nil
			}
			if len(run) == 0 {
				curr = p
			}
			run = append(run, v)
		}
		if len(run) > 0 {
			yield(run, curr)
		}
	}
}
