/*
Package pointfree provides point-free, composable transformations for
iter.Seq, so that small data pipelines can be built by chaining unary
functions instead of writing loops.

The package is made of four layers:

  - Combinators (Map, Filter, FoldLeft, Zip, Sort, Sum, ...) take their
    sequence argument last. Combinators returning an iter.Seq are lazy:
    nothing is computed until the result is iterated, and a chain such as
    Map then Filter then Map runs in a single pass. Combinators returning a
    slice or a scalar are eager and drain their input.
  - Scalar helpers (Add, Neg, Even, Fst, Always, ...) are plain generic
    functions, usable as values once instantiated.
  - The curry subpackage fixes every non-sequence argument of a combinator
    and returns a unary function over the sequence. It is built on Partial,
    Partial2 and Curry3.
  - Pipe and Compose chain unary functions left to right and right to left.
    PipeN and ComposeN do the same for chains whose links change type.

Example of a simple pipeline:

	// Sum of the squares of the even numbers in 1..10.
	f := pointfree.Pipe4(
		pointfree.BiSeq[int].All,
		curry.Filter(pointfree.Even[int]),
		curry.Map(func(x int) int { return x * x }),
		pointfree.Sum[int],
	)

	f(pointfree.Range(1, 10)) // 220

Values that may be missing, such as the Head of an empty sequence, are
returned as an Option. Integer division by zero in Div, Rem and Recip is
not guarded and panics like the built-in operators do.

Sequences backed by a slice can be iterated any number of times. Once
turns any sequence into a single-use one, which yields nothing after its
first iteration.
*/
package pointfree
