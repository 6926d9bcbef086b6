package parse

// Repetition combinators. All of them require the element parser to
// consume at least one byte on every success: a parser that can succeed
// on empty input (for example anything built on [Optional]) makes the
// repetition loop run forever. The library does not guard against this
// at runtime; it is a caller obligation.

// Many applies p zero or more times, collecting the values in order. It
// stops at p's first failure, discarding that failure and leaving its
// input unconsumed. Many never fails; when p never succeeds the value is
// empty and the remainder is the original input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		var values []T
		remaining := input
		for {
			r := p(remaining)
			if !r.ok {
				break
			}
			values = append(values, r.value)
			remaining = r.remaining
		}
		return Success(values, remaining)
	}
}

// Many1 is [Many] but fails with "Expected at least one occurrence" when
// p did not succeed even once.
func Many1[T any](p Parser[T]) Parser[[]T] {
	many := Many(p)
	return func(input string) Result[[]T] {
		r := many(input)
		if r.ok && len(r.value) == 0 {
			return Failure[[]T]("Expected at least one occurrence")
		}
		return r
	}
}

// Optional runs p once. On success it wraps the value in a set [Option]
// with p's remainder; on failure it succeeds with an absent Option and
// the original, unconsumed input. The failure is swallowed and never
// surfaced, so Optional never fails.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	return func(input string) Result[Option[T]] {
		r := p(input)
		if r.ok {
			return Success(Option[T]{Value: r.value, Set: true}, r.remaining)
		}
		return Success(Option[T]{}, input)
	}
}

// SepBy parses zero or more elements separated by separator, greedily
// alternating element, separator, element, and so on. The loop ends as
// soon as an element attempt fails, or as soon as the separator attempt
// after a successful element fails; in either case the failed attempt
// consumes nothing and its message is discarded. SepBy never fails.
//
// A separator that succeeds with no following element stays consumed:
// SepBy does not backtrack past it, so "1,2," parses to the elements 1
// and 2 with the trailing "," consumed. Grammars that must reject a
// trailing separator have to check the remainder themselves.
func SepBy[T, S any](element Parser[T], separator Parser[S]) Parser[[]T] {
	return func(input string) Result[[]T] {
		var values []T
		remaining := input
		for {
			el := element(remaining)
			if !el.ok {
				break
			}
			values = append(values, el.value)
			remaining = el.remaining

			sep := separator(remaining)
			if !sep.ok {
				break
			}
			remaining = sep.remaining
		}
		return Success(values, remaining)
	}
}
