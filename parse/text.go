package parse

import "golang.org/x/exp/constraints"

// whitespace consumes any run of ASCII whitespace, possibly empty.
var whitespace = Many(Whitespace)

// SkipWS consumes and discards leading whitespace, then runs p on what
// remains. The discarded whitespace never appears in the output.
func SkipWS[T any](p Parser[T]) Parser[T] {
	return Bind(whitespace, func([]byte) Parser[T] {
		return p
	})
}

// Integer returns a parser for one or more ASCII digits folded
// left-to-right into a non-negative base-10 value of type T. It does not
// accept a sign. A literal whose value does not fit in T fails with
// "Integer literal out of range"; the parser never wraps silently.
func Integer[T constraints.Integer]() Parser[T] {
	digits := Many1(Digit)
	return func(input string) Result[T] {
		r := digits(input)
		if !r.ok {
			return fail[T](r)
		}
		var value T
		for _, d := range r.value {
			next := value*10 + T(d-'0')
			if next/10 != value {
				return Failure[T]("Integer literal out of range")
			}
			value = next
		}
		return Success(value, r.remaining)
	}
}

// Int parses one or more ASCII digits as a non-negative int.
var Int = Integer[int]()
