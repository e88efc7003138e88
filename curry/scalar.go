package curry

import (
	pf "github.com/KasperOmsK/pointfree"
	"golang.org/x/exp/constraints"
)

// The arithmetic helpers fix the left operand: Sub(10)(3) == 7.
// Use pointfree.Flip on the uncurried helper to fix the right operand.

func Add[T pf.Number](a T) func(T) T {
	return pf.Partial(pf.Add[T], a)
}

func Sub[T pf.Number](a T) func(T) T {
	return pf.Partial(pf.Sub[T], a)
}

func Mul[T pf.Number](a T) func(T) T {
	return pf.Partial(pf.Mul[T], a)
}

// Div panics on integer division by zero when the returned function is called.
func Div[T pf.Number](a T) func(T) T {
	return pf.Partial(pf.Div[T], a)
}

func Rem[T constraints.Integer](a T) func(T) T {
	return pf.Partial(pf.Rem[T], a)
}
