package pointfree

import (
	"iter"
)

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be kept.
	Predicate[T any] func(item T) bool
)

// Map transforms each input value using fn and returns a new sequence
// producing the mapped values.
//
// Map is lazy: fn is only called while the result is being iterated.
func Map[In, Out any](fn MapFunc[In, Out], seq iter.Seq[In]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(fn(in)) {
				return
			}
		}
	}
}

// FlatMap transforms each input value using fn and returns a sequence
// producing the flattened output values.
//
// FlatMap is equivalent to calling Flatten(Map(fn, seq)).
func FlatMap[In, Out any](fn MapFunc[In, []Out], seq iter.Seq[In]) iter.Seq[Out] {
	return Flatten(Map(fn, seq))
}

// Filter returns a sequence that yields only the values for which predicate
// returns true. The predicate is called exactly once per input value.
func Filter[T any](predicate Predicate[T], seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for in := range seq {
			if predicate(in) {
				if !yield(in) {
					return
				}
			}
		}
	}
}

// FilterNot is the complement of Filter: it yields only the values for
// which predicate returns false.
func FilterNot[T any](predicate Predicate[T], seq iter.Seq[T]) iter.Seq[T] {
	return Filter(func(item T) bool { return !predicate(item) }, seq)
}

// Flatten converts a sequence of slices into a sequence of their elements,
// emitting the items of each slice in order.
func Flatten[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for slice := range seq {
			for _, item := range slice {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Tap calls fn on every value as it flows through, without altering the
// sequence.
//
// Tap panics if fn is nil.
func Tap[T any](fn func(T), seq iter.Seq[T]) iter.Seq[T] {
	if fn == nil {
		panic("pointfree.Tap: fn must not be nil")
	}
	return func(yield func(T) bool) {
		for in := range seq {
			fn(in)
			if !yield(in) {
				return
			}
		}
	}
}

// Chunk groups incoming values into slices of the given size and returns
// a sequence producing those slices.
//
// The final chunk may be smaller than chunkSize. Each chunk has its own
// backing array, so callers may retain chunks freely.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](chunkSize int, seq iter.Seq[T]) iter.Seq[[]T] {
	if chunkSize <= 0 {
		panic("pointfree.Chunk: chunkSize must be positive")
	}

	return func(yield func([]T) bool) {
		accum := make([]T, 0, chunkSize)
		for i := range seq {
			if len(accum) >= chunkSize {
				if !yield(accum) {
					return
				}
				accum = make([]T, 0, chunkSize)
			}

			accum = append(accum, i)
		}

		if len(accum) > 0 {
			yield(accum)
		}
	}
}

// GroupBy groups consecutive input values according to a key function and
// returns a sequence producing those groups.
//
// GroupBy does not reorder values. Values are grouped only when they appear
// consecutively with the same key; when the key changes, the current group
// is emitted and a new group is started.
//
// For example, given input values:
//
//	A, A, B, B, A
//
// GroupBy will emit:
//
//	[A, A], [B, B], [A]
func GroupBy[T any, K comparable](keyFunc func(T) K, seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		accum := make([]T, 0)
		var currentGroupKey K
		for i := range seq {
			k := keyFunc(i)
			if k != currentGroupKey && len(accum) > 0 {
				if !yield(accum) {
					return
				}
				accum = make([]T, 0)
			}
			currentGroupKey = k
			accum = append(accum, i)
		}

		// yield the last group
		if len(accum) > 0 {
			yield(accum)
		}
	}
}

// GroupFold groups consecutive values by key, like GroupBy, and folds each
// group into a single value instead of collecting it into a slice.
//
// initFunc receives the first value of a group and returns the starting
// accumulator; fn is then applied to every value of the group, the first
// one included. For example, to sum each run:
//
//	GroupFold(key, func(int) int { return 0 }, Add[int], seq)
func GroupFold[T any, K comparable, R any](
	keyFunc func(T) K,
	initFunc func(first T) R,
	fn FoldFunc[R, T],
	seq iter.Seq[T]) iter.Seq[R] {

	return func(yield func(R) bool) {
		var acc R
		var currentGroupKey K
		started := false
		for i := range seq {
			k := keyFunc(i)
			if started && k != currentGroupKey {
				if !yield(acc) {
					return
				}
				started = false
			}

			if !started {
				// new group
				acc = initFunc(i)
				started = true
			}

			currentGroupKey = k
			acc = fn(acc, i)
		}

		if started {
			yield(acc)
		}
	}
}

// Zip pairs up the values of a and b positionally. The result stops as soon
// as either input is exhausted.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[Pair[A, B]] {
	return ZipWith(MakePair[A, B], a, b)
}

// ZipWith combines the values of a and b positionally using fn. The result
// stops as soon as either input is exhausted.
func ZipWith[A, B, Out any](fn func(A, B) Out, a iter.Seq[A], b iter.Seq[B]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		next, stop := iter.Pull(b)
		defer stop()

		for va := range a {
			vb, ok := next()
			if !ok {
				return
			}
			if !yield(fn(va, vb)) {
				return
			}
		}
	}
}
