package resample

import (
	"errors"
	"fmt"
	"slices"

	"seqkit/seqs"
)

// Common resampling errors.
var (
	ErrShrink         = errors.New("cannot stretch to a length shorter than the source")
	ErrEmptySource    = errors.New("cannot resample an empty source to a non-zero length")
	ErrNegativeLength = errors.New("target length must not be negative")
)

// Indices returns the nearest-lower source index for every output position:
// floor(i*srcLen/length) for i in [0, length). A negative length yields nil.
// Indices does not check that the resampling is valid; see Check.
func Indices(srcLen, length int) []int {
	if length < 0 {
		return nil
	}
	idx := make([]int, length)
	for i := range idx {
		idx[i] = i * srcLen / length
	}
	return idx
}

// Stretch resamples src to exactly length elements by nearest-lower-index
// selection, so every source element is repeated roughly length/len(src)
// times. Shrinking is a usage error and is reported as ErrShrink.
//
//	Stretch([]string{"a", "b"}, 4) // [a a b b]
func Stretch[T any](src []T, length int) ([]T, error) {
	if err := Check(len(src), length); err != nil {
		return nil, err
	}
	return resampled(src, length), nil
}

// Check reports whether a source of srcLen elements can be stretched to
// length elements, returning the error Stretch would return.
func Check(srcLen, length int) error {
	switch {
	case length < 0:
		return fmt.Errorf("%w: got %d", ErrNegativeLength, length)
	case srcLen > length:
		return fmt.Errorf("%w: source has %d elements, target is %d", ErrShrink, srcLen, length)
	case srcLen == 0 && length > 0:
		return fmt.Errorf("%w: target is %d", ErrEmptySource, length)
	}
	return nil
}

// resampled returns a new length-long resampling of src.
func resampled[T any](src []T, length int) []T {
	out := make([]T, length)
	gather(out, src, 0, length)
	return out
}

// gather fills dst[lo:hi], where dst is the whole resampled output.
func gather[T any](dst, src []T, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst[i] = src[i*len(src)/len(dst)]
	}
}

// MakeEven resamples a and b by index to the length of the longer one.
// The longer input comes back as an unchanged copy, the shorter one stretched.
// Two empty inputs give two empty slices; exactly one empty input is
// ErrEmptySource.
func MakeEven[A, B any](a []A, b []B) ([]A, []B, error) {
	length := max(len(a), len(b))
	if err := checkEven(len(a), len(b)); err != nil {
		return nil, nil, err
	}
	return resampled(a, length), resampled(b, length), nil
}

// MakeEvenByCycling brings a and b to the length of the longer one by
// repeating each from its start, so no element is skipped.
// Empty inputs are handled as in MakeEven.
func MakeEvenByCycling[A, B any](a []A, b []B) ([]A, []B, error) {
	length := max(len(a), len(b))
	if err := checkEven(len(a), len(b)); err != nil {
		return nil, nil, err
	}
	return cycleTo(a, length), cycleTo(b, length), nil
}

func checkEven(lenA, lenB int) error {
	if (lenA == 0) != (lenB == 0) {
		return fmt.Errorf("%w: lengths %d and %d", ErrEmptySource, lenA, lenB)
	}
	return nil
}

func cycleTo[T any](s []T, length int) []T {
	out := make([]T, 0, length)
	return slices.AppendSeq(out, seqs.Take(seqs.Cycle(s), length))
}
