package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Backward yields the items of in from last to first.
func Backward[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(in) - 1; i >= 0; i-- {
			if !yield(in[i]) {
				break
			}
		}
	}
}

// Once wraps seq so that only its first iteration produces values.
// Any later iteration yields nothing.
func Once[T any](seq iter.Seq[T]) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		for i := range seq {
			if !yield(i) {
				break
			}
		}
	}
}
