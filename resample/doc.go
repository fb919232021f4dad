// Package resample brings sequences to a common length.
//
// Index resampling maps output position i to source index
// floor(i*len(src)/length), repeating elements of a short source
// (Stretch, MakeEven). Cycling instead repeats the whole source from its
// start (MakeEvenByCycling). Stretch refuses to shrink: a source longer than
// the target is reported as ErrShrink, never truncated.
package resample
