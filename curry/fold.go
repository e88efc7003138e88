package curry

import (
	"iter"

	pf "github.com/KasperOmsK/pointfree"
)

// FoldLeft fixes the initial accumulator and the folding function.
func FoldLeft[T, R any](init R, fn pf.FoldFunc[R, T]) func(iter.Seq[T]) R {
	return pf.Partial2(pf.FoldLeft[T, R], init, fn)
}

// FoldLeftFrom fixes only the initial accumulator. The returned function
// takes the folding function and the sequence together.
func FoldLeftFrom[T, R any](init R) func(pf.FoldFunc[R, T], iter.Seq[T]) R {
	return pf.Partial1of3(pf.FoldLeft[T, R], init)
}

// FoldLeftCurried fixes only the initial accumulator and curries the rest:
//
//	product := curry.FoldLeftCurried[int](1)(pointfree.Mul[int])
//	product(pointfree.Of(2, 3, 4)) // 24
func FoldLeftCurried[T, R any](init R) func(pf.FoldFunc[R, T]) func(iter.Seq[T]) R {
	return pf.Curry3(pf.FoldLeft[T, R])(init)
}

// FoldRight fixes the initial accumulator and the folding function.
func FoldRight[T, R any](init R, fn pf.FoldFunc[R, T]) func(pf.BiSeq[T]) R {
	return pf.Partial2(pf.FoldRight[T, R], init, fn)
}

// FoldRightFrom is the FoldRight counterpart of FoldLeftFrom.
func FoldRightFrom[T, R any](init R) func(pf.FoldFunc[R, T], pf.BiSeq[T]) R {
	return pf.Partial1of3(pf.FoldRight[T, R], init)
}

// FoldRightCurried is the FoldRight counterpart of FoldLeftCurried.
func FoldRightCurried[T, R any](init R) func(pf.FoldFunc[R, T]) func(pf.BiSeq[T]) R {
	return pf.Curry3(pf.FoldRight[T, R])(init)
}
