package sliceutil

import (
	"iter"
	"reflect"
)

// Helpers for values whose element type is only known at runtime,
// such as decoded YAML or JSON documents.

// AllInstances reports whether every element of collection holds a V,
// either as its concrete type or, when V is an interface, by implementing it.
// It is vacuously true for an empty slice.
func AllInstances[V any](collection []any) bool {
	return All(collection, func(v any) bool {
		_, ok := v.(V)
		return ok
	})
}

// Tuplify normalises "one item or a collection of items" into a slice.
//
// Strings are wrapped whole and never split into runes. Slices, arrays,
// single-value iterator functions such as iter.Seq[int] and channels are
// expanded into their elements; a channel is drained until it is closed.
// Everything else, maps and nil funcs or channels included, is wrapped as a
// single element. Tuplify never fails.
func Tuplify(obj any) []any {
	switch v := obj.(type) {
	case nil:
		return []any{nil}
	case string:
		return []any{v}
	case []any:
		res := make([]any, len(v))
		copy(res, v)
		return res
	case iter.Seq[any]:
		res := []any{}
		for e := range v {
			res = append(res, e)
		}
		return res
	}

	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		res := make([]any, rv.Len())
		for i := range res {
			res[i] = rv.Index(i).Interface()
		}
		return res
	case reflect.Func, reflect.Chan:
		// Integers are rangeable too, so the kind is checked first.
		if rv.IsNil() || !rv.Type().CanSeq() {
			return []any{obj}
		}
		res := []any{}
		for e := range rv.Seq() {
			res = append(res, e.Interface())
		}
		return res
	default:
		// Named string types land here too.
		return []any{obj}
	}
}
