package pointfree

// Partial fixes the first argument of a two-argument function.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial2 fixes the first two arguments of a three-argument function.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return f(a, b, c)
	}
}

// Partial1of3 fixes the first argument of a three-argument function and
// leaves the other two to be supplied together.
func Partial1of3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Curry takes a two argument function and returns a function that accepts
// the first argument and then returns a function that accepts the second.
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return Partial(f, a)
	}
}

// Curry3 is Curry for three-argument functions.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return Partial2(f, a, b)
		}
	}
}

// Uncurry inverts Curry.
func Uncurry[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}
