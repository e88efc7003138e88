package pointfree

import "golang.org/x/exp/constraints"

// Signed is any numeric type with a sign.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T Number](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// Div returns a / b.
//
// Integer division truncates toward zero and panics when b is zero.
// Floating point division follows IEEE 754.
func Div[T Number](a, b T) T { return a / b }

// Rem returns a % b, with the sign of a. It panics when b is zero.
func Rem[T constraints.Integer](a, b T) T { return a % b }

// Neg returns -x.
func Neg[T Signed](x T) T { return -x }

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns -1, 0 or 1 according to the sign of x.
func Signum[T Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Even reports whether x is divisible by two.
func Even[T constraints.Integer](x T) bool { return Rem(x, 2) == 0 }

// Odd reports whether x is not divisible by two.
func Odd[T constraints.Integer](x T) bool { return Rem(x, 2) != 0 }

// Recip returns 1 / x, with the same zero handling as Div.
func Recip[T Number](x T) T { return Div(1, x) }

// Identity returns v unchanged.
func Identity[T any](v T) T { return v }

// Always returns a function that ignores its argument and returns v.
func Always[B, A any](v A) func(B) A {
	return func(B) A {
		return v
	}
}

// Always2 is the two-argument form of Always: it returns v and discards
// the second argument. Always(v)(x) == Always2(v, x).
func Always2[A, B any](v A, _ B) A {
	return v
}
