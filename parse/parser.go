package parse

// Parser consumes a prefix of its input and produces a [Result]. On
// success the result's remaining text is the only valid continuation
// point for further parsing; a parser never inserts, reorders, or
// duplicates input, so the remainder is always a suffix of what it was
// given.
//
// A Parser is an immutable value. Combinators capture their argument
// parsers inside closures and return a new Parser wrapping them; nothing
// captured is ever mutated, so any composed parser is safe for concurrent
// use.
type Parser[T any] func(input string) Result[T]

// Pair holds the two values produced by [Seq].
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Option is the value produced by [Optional]: the value parsed by the
// wrapped parser when it succeeded, or an absent value when it did not.
type Option[T any] struct {
	Value T
	Set   bool
}
