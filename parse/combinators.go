package parse

import "strings"

// Map transforms the success value of p through the pure function f.
// Failures are forwarded unchanged, and the remaining input is exactly
// what p left behind; only the value changes.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) Result[B] {
		r := p(input)
		if !r.ok {
			return fail[B](r)
		}
		return Success(f(r.value), r.remaining)
	}
}

// Bind runs p and, on success, applies f to the parsed value to obtain
// the parser for the rest of the input. This is the sequential-dependency
// primitive: the second parser's identity depends on the first parser's
// value. On p's failure, Bind short-circuits with that failure.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input string) Result[B] {
		r := p(input)
		if !r.ok {
			return fail[B](r)
		}
		return f(r.value)(r.remaining)
	}
}

// Seq runs p1 and then p2 on p1's remainder, producing both values as a
// [Pair]. It fails with p1's message if p1 fails and with p2's message if
// p2 fails; no partial value is retained.
func Seq[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return func(input string) Result[Pair[A, B]] {
		r1 := p1(input)
		if !r1.ok {
			return fail[Pair[A, B]](r1)
		}
		r2 := p2(r1.remaining)
		if !r2.ok {
			return fail[Pair[A, B]](r2)
		}
		return Success(Pair[A, B]{Fst: r1.value, Snd: r2.value}, r2.remaining)
	}
}

// Choice tries each alternative in order against the same input and
// returns the first success. A failed alternative consumes nothing. If
// every alternative fails, Choice fails with the branch messages joined
// by " | " in list order; with no alternatives at all it fails with
// "No alternatives matched".
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		messages := make([]string, 0, len(parsers))
		for _, p := range parsers {
			r := p(input)
			if r.ok {
				return r
			}
			messages = append(messages, r.message)
		}
		if len(messages) == 0 {
			return Failure[T]("No alternatives matched")
		}
		return Failure[T](strings.Join(messages, " | "))
	}
}
