package parse

import "fmt"

// AnyChar consumes the first byte of the input. It fails only on empty
// input.
var AnyChar Parser[byte] = func(input string) Result[byte] {
	if input == "" {
		return Failure[byte]("Unexpected end of input")
	}
	return Success(input[0], input[1:])
}

// Digit consumes one ASCII digit.
var Digit Parser[byte] = func(input string) Result[byte] {
	if input != "" && isDigit(input[0]) {
		return Success(input[0], input[1:])
	}
	return Failure[byte](fmt.Sprintf("Expected digit, found '%s'", found(input)))
}

// Whitespace consumes one ASCII whitespace byte (space, tab, newline,
// carriage return, vertical tab, or form feed).
var Whitespace Parser[byte] = func(input string) Result[byte] {
	if input != "" && isSpace(input[0]) {
		return Success(input[0], input[1:])
	}
	return Failure[byte](fmt.Sprintf("Expected whitespace, found '%s'", found(input)))
}

// Char matches exactly the byte expected at the front of the input.
func Char(expected byte) Parser[byte] {
	return func(input string) Result[byte] {
		if input != "" && input[0] == expected {
			return Success(expected, input[1:])
		}
		return Failure[byte](fmt.Sprintf("Expected '%c', found '%s'", expected, found(input)))
	}
}

// String matches the literal prefix expected at the front of the input.
func String(expected string) Parser[string] {
	return func(input string) Result[string] {
		if len(input) >= len(expected) && input[:len(expected)] == expected {
			return Success(expected, input[len(expected):])
		}
		actual := input
		if len(input) > len(expected) {
			actual = input[:len(expected)]
		}
		return Failure[string](fmt.Sprintf("Expected %q, found %q", expected, actual))
	}
}

// found names the first byte of the input for a diagnostic, or "EOF" when
// there is none.
func found(input string) string {
	if input == "" {
		return "EOF"
	}
	return string(input[0])
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
