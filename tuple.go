package pointfree

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its two components.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both components as Go multiple return values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Fst projects the first component of p.
func Fst[A, B any](p Pair[A, B]) A {
	return p.First
}

// Snd projects the second component of p.
func Snd[A, B any](p Pair[A, B]) B {
	return p.Second
}
