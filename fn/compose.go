// Package fn builds single functions out of ordered lists of functions.
package fn

import "seqkit/sliceutil"

// Step is one stage of a Composition: Fn is called with the piped value
// first, followed by its bound Args.
type Step[T any] struct {
	Fn   func(T, ...any) T
	Args []any
}

// Bind returns a Step that calls f with args after the piped value.
func Bind[T any](f func(T, ...any) T, args ...any) Step[T] {
	return Step[T]{Fn: f, Args: args}
}

// Identity returns x unchanged.
func Identity[T any](x T) T { return x }

// Composition returns a function that runs steps right to left: the last step
// receives the input and the first step produces the result.
// With no steps it returns Identity.
//
//	Composition(Bind(f), Bind(g))(x) == f(g(x))
func Composition[T any](steps ...Step[T]) func(T) T {
	return sliceutil.Reduce(steps, func(outer func(T) T, s Step[T]) func(T) T {
		return func(x T) T {
			return outer(s.Fn(x, s.Args...))
		}
	}, Identity[T])
}

// Compose is Composition for functions that take no extra arguments.
//
//	Compose(f, g)(x) == f(g(x))
func Compose[T any](fns ...func(T) T) func(T) T {
	return Composition(sliceutil.Map(fns, func(f func(T) T) Step[T] {
		return Step[T]{Fn: func(x T, _ ...any) T { return f(x) }}
	})...)
}
