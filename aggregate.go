package pointfree

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

type (

	// FoldFunc combines an accumulator with the next value.
	FoldFunc[R, T any] func(acc R, item T) R

	// Number is any type supporting the four arithmetic operators.
	Number interface {
		constraints.Integer | constraints.Float | constraints.Complex
	}
)

// FoldLeft folds seq from its first value to its last, starting from init.
//
// An empty sequence returns init unchanged.
func FoldLeft[T, R any](init R, fn FoldFunc[R, T], seq iter.Seq[T]) R {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// FoldRight folds seq from its last value to its first, starting from init.
//
//	FoldRight("", func(acc, s string) string { return acc + "/" + s }, FromSlice([]string{"a", "b"}))
//
// returns "/b/a".
func FoldRight[T, R any](init R, fn FoldFunc[R, T], seq BiSeq[T]) R {
	return FoldLeft(init, fn, seq.Backward())
}

// Head returns the first value of seq. Only one value is pulled.
func Head[T any](seq iter.Seq[T]) Option[T] {
	for v := range seq {
		return Some(v)
	}
	return None[T]()
}

// Tail returns every value of seq but the first.
//
// Tail of an empty sequence is None, not an empty slice.
func Tail[T any](seq iter.Seq[T]) Option[[]T] {
	all := Collect(seq)
	if len(all) == 0 {
		return None[[]T]()
	}
	return Some(all[1:])
}

// Last returns the final value of seq, draining it.
func Last[T any](seq iter.Seq[T]) Option[T] {
	last := None[T]()
	for v := range seq {
		last = Some(v)
	}
	return last
}

// Init returns every value of seq but the last.
//
// Init of an empty sequence is None, not an empty slice.
func Init[T any](seq iter.Seq[T]) Option[[]T] {
	all := Collect(seq)
	if len(all) == 0 {
		return None[[]T]()
	}
	return Some(all[:len(all)-1])
}

// Skip drops the first n values of seq and returns the rest.
//
// Skipping more values than seq holds returns an empty slice.
// Skip panics if n is negative.
func Skip[T any](n int, seq iter.Seq[T]) []T {
	if n < 0 {
		panic("pointfree.Skip: n must not be negative")
	}

	out := make([]T, 0)
	i := 0
	for v := range seq {
		if i < n {
			i++
			continue
		}
		out = append(out, v)
	}
	return out
}

// Take returns the first n values of seq, or all of them if seq is shorter.
// No value beyond the n-th is pulled.
//
// Take panics if n is negative.
func Take[T any](n int, seq iter.Seq[T]) []T {
	if n < 0 {
		panic("pointfree.Take: n must not be negative")
	}

	out := make([]T, 0, min(n, 64))
	if n == 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Reverse returns the values of seq in reverse order.
func Reverse[T any](seq iter.Seq[T]) []T {
	out := Collect(seq)
	slices.Reverse(out)
	return out
}

// Concat returns all values of first followed by all values of second.
func Concat[T any](first, second iter.Seq[T]) []T {
	out := Collect(first)
	for v := range second {
		out = append(out, v)
	}
	return out
}

// Find returns the first pair whose key equals key. Iteration stops at
// the first match.
func Find[K comparable, V any](key K, seq iter.Seq[Pair[K, V]]) Option[Pair[K, V]] {
	return FindBy(func(p Pair[K, V]) bool { return p.First == key }, seq)
}

// FindBy returns the first value of seq satisfying predicate.
func FindBy[T any](predicate Predicate[T], seq iter.Seq[T]) Option[T] {
	for v := range seq {
		if predicate(v) {
			return Some(v)
		}
	}
	return None[T]()
}

// Sort returns the values of seq in ascending natural order.
// The sort is stable.
func Sort[T cmp.Ordered](seq iter.Seq[T]) []T {
	return SortBy(cmp.Compare[T], seq)
}

// SortBy returns the values of seq ordered by compare, which follows the
// cmp.Compare convention. Values that compare equal keep their input order.
func SortBy[T any](compare func(a, b T) int, seq iter.Seq[T]) []T {
	out := Collect(seq)
	slices.SortStableFunc(out, compare)
	return out
}

// Sum adds up the values of seq. An empty sequence sums to zero.
func Sum[T Number](seq iter.Seq[T]) T {
	return FoldLeft(T(0), Add[T], seq)
}

// Product multiplies the values of seq. An empty sequence yields one.
func Product[T Number](seq iter.Seq[T]) T {
	return FoldLeft(T(1), Mul[T], seq)
}

// SumOf adds up vs.
func SumOf[T Number](vs ...T) T {
	return Sum(Of(vs...))
}

// SumRange adds up the integers from lo to hi, both inclusive.
func SumRange[T constraints.Integer](lo, hi T) T {
	return Sum(Range(lo, hi).All())
}

// Length counts the values of seq, draining it.
func Length[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
