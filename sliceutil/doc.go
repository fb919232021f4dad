// Package sliceutil provides generic, non-mutating helpers over slices:
// keep-last deduplication, list update and difference, run-length batching
// by a derived property, flattening, zero and nil removal, and a few checks
// for dynamically typed values.
//
// Every function returns a fresh slice; inputs are never modified and
// results never alias them.
package sliceutil
