package pointfree

import (
	"iter"
	"slices"

	"github.com/KasperOmsK/pointfree/internal/iterx"
	"golang.org/x/exp/constraints"
)

// BiSeq is a sequence that can be traversed from either end.
//
// FoldRight requires a BiSeq. Use FromSlice when the data is already
// materialized, or Bi to lift a forward-only iter.Seq.
type BiSeq[T any] struct {
	forward  iter.Seq[T]
	backward iter.Seq[T]
}

// All returns the sequence in its natural order.
func (s BiSeq[T]) All() iter.Seq[T] {
	return s.forward
}

// Backward returns the sequence from its last element to its first.
func (s BiSeq[T]) Backward() iter.Seq[T] {
	return s.backward
}

// Of returns a sequence yielding vs in order.
func Of[T any](vs ...T) iter.Seq[T] {
	return iterx.FromSlice(vs)
}

// FromSlice returns a BiSeq over s. The slice is not copied.
func FromSlice[T any](s []T) BiSeq[T] {
	return BiSeq[T]{
		forward:  iterx.FromSlice(s),
		backward: iterx.Backward(s),
	}
}

// Bi lifts a forward-only sequence into a BiSeq.
//
// Forward traversal is passed through untouched. Backward traversal
// drains seq into a buffer first and then walks the buffer in reverse.
func Bi[T any](seq iter.Seq[T]) BiSeq[T] {
	return BiSeq[T]{
		forward: seq,
		backward: func(yield func(T) bool) {
			for v := range iterx.Backward(slices.Collect(seq)) {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Range returns the integers from lo to hi, both inclusive.
// An empty BiSeq is returned when lo > hi.
func Range[T constraints.Integer](lo, hi T) BiSeq[T] {
	return BiSeq[T]{
		forward: func(yield func(T) bool) {
			if lo > hi {
				return
			}
			for i := lo; ; i++ {
				if !yield(i) || i == hi {
					return
				}
			}
		},
		backward: func(yield func(T) bool) {
			if lo > hi {
				return
			}
			for i := hi; ; i-- {
				if !yield(i) || i == lo {
					return
				}
			}
		},
	}
}

// Pairs converts a two-value sequence, such as maps.All or slices.All,
// into a sequence of Pair.
func Pairs[K, V any](seq iter.Seq2[K, V]) iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range seq {
			if !yield(MakePair(k, v)) {
				return
			}
		}
	}
}

// Once returns a single-use view of seq: the first iteration yields the
// values of seq, every later iteration yields nothing.
func Once[T any](seq iter.Seq[T]) iter.Seq[T] {
	return iterx.Once(seq)
}

// Collect drains seq into a new slice. The result is never nil.
func Collect[T any](seq iter.Seq[T]) []T {
	out := make([]T, 0)
	for v := range seq {
		out = append(out, v)
	}
	return out
}
