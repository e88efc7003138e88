package pointfree

import "iter"

// Ls builds a slice the way a list comprehension would:
//
//	[mapper(x) for x in src if predicate(x)]
//
// A nil predicate keeps every value. Source order is preserved and the
// result is never nil.
//
// Ls panics if mapper is nil.
func Ls[T, U any](mapper MapFunc[T, U], src iter.Seq[T], predicate Predicate[T]) []U {
	if mapper == nil {
		panic("pointfree.Ls: mapper must not be nil")
	}

	out := make([]U, 0)
	for v := range src {
		if predicate == nil || predicate(v) {
			out = append(out, mapper(v))
		}
	}
	return out
}

// LsWhere is Ls with the identity mapper.
func LsWhere[T any](src iter.Seq[T], predicate Predicate[T]) []T {
	return Ls(Identity[T], src, predicate)
}

// LsOf is Ls with the identity mapper and no predicate.
func LsOf[T any](src iter.Seq[T]) []T {
	return Ls(Identity[T], src, nil)
}
