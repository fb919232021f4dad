/*
Package seqs provides helpers for Go 1.23+ iterators (iter.Seq).

It covers:

  - **Cycles**: [AdjacentPairs] walks the edges of a cycle through a slice and
    [Cycle] repeats a slice indefinitely (bound it with [Take]).
  - **Runs**: [RunsBy] groups consecutive elements by a derived property while
    streaming, the lazy counterpart of sliceutil.BatchBy.
  - **Functional Transformations**: [Map], [Filter], [Reduce], [Concat], [Zip].

All returned sequences are lazy and restartable: nothing is computed until the
sequence is ranged over, and ranging over it again starts from the beginning.

	for p := range seqs.AdjacentPairs([]string{"a", "b", "c"}) {
		fmt.Println(p.V1, p.V2) // a b, b c, c a
	}
*/
package seqs
