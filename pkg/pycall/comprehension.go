package pycall

import "iter"

// Comprehension adapts a source sequence through a mapping function
// (spec.md §6.2's `comprehension`). It yields each mapped value as is and
// does not flatten a mapped value that is itself a sequence;
// FlattenComprehension below is the one-level map-then-flatten form.
type Comprehension[S, T any] struct {
	source iter.Seq[S]
	mapFn  func(S) T
}

// NewComprehension builds a Comprehension over source, applying mapFn to
// each element.
func NewComprehension[S, T any](source iter.Seq[S], mapFn func(S) T) Comprehension[S, T] {
	return Comprehension[S, T]{source: source, mapFn: mapFn}
}

// Seq returns the adapted sequence as a range-over-func iterator.
func (c Comprehension[S, T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range c.source {
			if !yield(c.mapFn(s)) {
				return
			}
		}
	}
}

// Collect drains the comprehension into a slice.
func (c Comprehension[S, T]) Collect() []T {
	var out []T
	for v := range c.Seq() {
		out = append(out, v)
	}
	return out
}

// FlattenComprehension is the one-level-flattening form: mapFn produces a
// nested sequence per source element, and every element of every nested
// sequence is yielded in turn (spec.md §6.2's flattening rule).
type FlattenComprehension[S, T any] struct {
	source iter.Seq[S]
	mapFn  func(S) iter.Seq[T]
}

// NewFlattenComprehension builds a one-level-flattening comprehension.
func NewFlattenComprehension[S, T any](source iter.Seq[S], mapFn func(S) iter.Seq[T]) FlattenComprehension[S, T] {
	return FlattenComprehension[S, T]{source: source, mapFn: mapFn}
}

// Seq returns the flattened sequence.
func (c FlattenComprehension[S, T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range c.source {
			for v := range c.mapFn(s) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Collect drains the flattened comprehension into a slice.
func (c FlattenComprehension[S, T]) Collect() []T {
	var out []T
	for v := range c.Seq() {
		out = append(out, v)
	}
	return out
}
