// Package curry provides curried forms of the pointfree combinators.
//
// Every function here fixes the leading, non-sequence arguments of the
// combinator of the same name and returns a function of the remaining
// sequence arguments, ready to be chained with pointfree.Pipe2 and friends:
//
//	sumOfEvenSquares := pointfree.Pipe3(
//		curry.Filter(pointfree.Even[int]),
//		curry.Map(func(x int) int { return x * x }),
//		pointfree.Sum[int],
//	)
//
// For all arguments, curry.X(args...)(seq) == pointfree.X(args..., seq).
// Building a curried function never evaluates anything.
package curry

import (
	"iter"

	pf "github.com/KasperOmsK/pointfree"
)

func Map[In, Out any](fn pf.MapFunc[In, Out]) func(iter.Seq[In]) iter.Seq[Out] {
	return pf.Partial(pf.Map[In, Out], fn)
}

func FlatMap[In, Out any](fn pf.MapFunc[In, []Out]) func(iter.Seq[In]) iter.Seq[Out] {
	return pf.Partial(pf.FlatMap[In, Out], fn)
}

func Filter[T any](predicate pf.Predicate[T]) func(iter.Seq[T]) iter.Seq[T] {
	return pf.Partial(pf.Filter[T], predicate)
}

func FilterNot[T any](predicate pf.Predicate[T]) func(iter.Seq[T]) iter.Seq[T] {
	return pf.Partial(pf.FilterNot[T], predicate)
}

// Tap panics if fn is nil, when the returned function is called.
func Tap[T any](fn func(T)) func(iter.Seq[T]) iter.Seq[T] {
	return pf.Partial(pf.Tap[T], fn)
}

// Chunk panics if chunkSize is not positive, when the returned function is called.
func Chunk[T any](chunkSize int) func(iter.Seq[T]) iter.Seq[[]T] {
	return pf.Partial(pf.Chunk[T], chunkSize)
}

func GroupBy[T any, K comparable](keyFunc func(T) K) func(iter.Seq[T]) iter.Seq[[]T] {
	return pf.Partial(pf.GroupBy[T, K], keyFunc)
}

func GroupFold[T any, K comparable, R any](keyFunc func(T) K, initFunc func(T) R, fn pf.FoldFunc[R, T]) func(iter.Seq[T]) iter.Seq[R] {
	return func(seq iter.Seq[T]) iter.Seq[R] {
		return pf.GroupFold(keyFunc, initFunc, fn, seq)
	}
}

func Skip[T any](n int) func(iter.Seq[T]) []T {
	return pf.Partial(pf.Skip[T], n)
}

func Take[T any](n int) func(iter.Seq[T]) []T {
	return pf.Partial(pf.Take[T], n)
}

// ZipWith fixes the combining function and leaves both sequences open.
func ZipWith[A, B, Out any](fn func(A, B) Out) func(iter.Seq[A], iter.Seq[B]) iter.Seq[Out] {
	return pf.Partial1of3(pf.ZipWith[A, B, Out], fn)
}

func Find[K comparable, V any](key K) func(iter.Seq[pf.Pair[K, V]]) pf.Option[pf.Pair[K, V]] {
	return pf.Partial(pf.Find[K, V], key)
}

func FindBy[T any](predicate pf.Predicate[T]) func(iter.Seq[T]) pf.Option[T] {
	return pf.Partial(pf.FindBy[T], predicate)
}

func SortBy[T any](compare func(a, b T) int) func(iter.Seq[T]) []T {
	return pf.Partial(pf.SortBy[T], compare)
}

// Ls fixes the mapper and predicate of a list comprehension and leaves
// the source open. A nil predicate keeps every value.
func Ls[T, U any](mapper pf.MapFunc[T, U], predicate pf.Predicate[T]) func(iter.Seq[T]) []U {
	return func(src iter.Seq[T]) []U {
		return pf.Ls(mapper, src, predicate)
	}
}

func LsWhere[T any](predicate pf.Predicate[T]) func(iter.Seq[T]) []T {
	return pf.Partial(pf.Flip(pf.LsWhere[T]), predicate)
}
