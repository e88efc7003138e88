package pointfree

import (
	"fmt"
	"slices"
)

// Pipe chains fns from left to right: Pipe(f, g, h)(v) == h(g(f(v))).
//
// Building the chain evaluates nothing; every call of the returned function
// runs the whole chain again from its argument.
//
// Pipe panics if fns is empty or contains a nil function.
func Pipe[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		panic("pointfree.Pipe: at least one function is required")
	}
	for i, fn := range fns {
		if fn == nil {
			panic(fmt.Sprintf("pointfree.Pipe: function %d is nil", i))
		}
	}
	fns = slices.Clone(fns)

	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Compose chains fns from right to left: Compose(f, g, h)(v) == f(g(h(v))).
//
// Compose panics if fns is empty or contains a nil function.
func Compose[T any](fns ...func(T) T) func(T) T {
	reversed := slices.Clone(fns)
	slices.Reverse(reversed)
	return Pipe(reversed...)
}

// Pipe2 returns the left to right composition of f1 and f2.
func Pipe2[A, B, C any](f1 func(A) B, f2 func(B) C) func(A) C {
	return func(a A) C {
		return f2(f1(a))
	}
}

func Pipe3[A, B, C, D any](f1 func(A) B, f2 func(B) C, f3 func(C) D) func(A) D {
	return Pipe2(Pipe2(f1, f2), f3)
}

func Pipe4[A, B, C, D, E any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) func(A) E {
	return Pipe2(Pipe3(f1, f2, f3), f4)
}

func Pipe5[A, B, C, D, E, F any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) func(A) F {
	return Pipe2(Pipe4(f1, f2, f3, f4), f5)
}

func Pipe6[A, B, C, D, E, F, G any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G) func(A) G {
	return Pipe2(Pipe5(f1, f2, f3, f4, f5), f6)
}

func Pipe7[A, B, C, D, E, F, G, H any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H) func(A) H {
	return Pipe2(Pipe6(f1, f2, f3, f4, f5, f6), f7)
}

func Pipe8[A, B, C, D, E, F, G, H, I any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I) func(A) I {
	return Pipe2(Pipe7(f1, f2, f3, f4, f5, f6, f7), f8)
}

// Compose2 returns the mathematical composition of f1 and f2:
// Compose2(f1, f2)(v) == f1(f2(v)).
func Compose2[A, B, C any](f1 func(B) C, f2 func(A) B) func(A) C {
	return Pipe2(f2, f1)
}

func Compose3[A, B, C, D any](f1 func(C) D, f2 func(B) C, f3 func(A) B) func(A) D {
	return Pipe3(f3, f2, f1)
}

func Compose4[A, B, C, D, E any](f1 func(D) E, f2 func(C) D, f3 func(B) C, f4 func(A) B) func(A) E {
	return Pipe4(f4, f3, f2, f1)
}

func Compose5[A, B, C, D, E, F any](f1 func(E) F, f2 func(D) E, f3 func(C) D, f4 func(B) C, f5 func(A) B) func(A) F {
	return Pipe5(f5, f4, f3, f2, f1)
}

func Compose6[A, B, C, D, E, F, G any](f1 func(F) G, f2 func(E) F, f3 func(D) E, f4 func(C) D, f5 func(B) C, f6 func(A) B) func(A) G {
	return Pipe6(f6, f5, f4, f3, f2, f1)
}

func Compose7[A, B, C, D, E, F, G, H any](f1 func(G) H, f2 func(F) G, f3 func(E) F, f4 func(D) E, f5 func(C) D, f6 func(B) C, f7 func(A) B) func(A) H {
	return Pipe7(f7, f6, f5, f4, f3, f2, f1)
}

func Compose8[A, B, C, D, E, F, G, H, I any](f1 func(H) I, f2 func(G) H, f3 func(F) G, f4 func(E) F, f5 func(D) E, f6 func(C) D, f7 func(B) C, f8 func(A) B) func(A) I {
	return Pipe8(f8, f7, f6, f5, f4, f3, f2, f1)
}
