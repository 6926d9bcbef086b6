// Package parse implements a small parser combinator library over strings.
//
// A [Parser] is a pure function from an input string to a [Result]: either
// a parsed value together with the unconsumed suffix of the input, or a
// diagnostic message. Failure is an ordinary value, not an error condition;
// combinators such as [Choice] and [Optional] inspect and discard failures
// as part of normal control flow.
//
// Larger parsers are built by composing smaller ones:
//
//	comma := parse.SkipWS(parse.Char(','))
//	ints := parse.SepBy(parse.Int, comma)
//	r := ints("10, 20, 30")
//
// A composed parser captures its constituent parsers by value and holds no
// mutable state between invocations, so it may be constructed once and
// invoked any number of times, including concurrently.
//
// Input is treated as a sequence of ASCII bytes. There is no Unicode-aware
// character classification, no position tracking, and no error recovery.
package parse
