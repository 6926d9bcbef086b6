package interp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/b33j0r/cbasic/parse"
)

// nonSpace accepts any single byte that is not ASCII whitespace. It is a
// one-off primitive: the parse package deliberately has no negated
// character classes.
var nonSpace parse.Parser[byte] = func(input string) parse.Result[byte] {
	if input != "" && !parse.Whitespace(input).Ok() {
		return parse.Success(input[0], input[1:])
	}
	return parse.Failure[byte]("Expected non-whitespace character.")
}

// tokens splits a line into whitespace-separated words.
var tokens = parse.SepBy(
	parse.Map(parse.Many1(nonSpace), func(chars []byte) string {
		return string(chars)
	}),
	parse.Many(parse.Whitespace),
)

// EvalLine tokenizes line and interprets each token in order: integers
// are pushed onto the stack, anything else runs as a word. A token that
// is neither gets an unknown-command diagnostic; execution continues with
// the remaining tokens. The returned error is non-nil only when the line
// itself cannot be tokenized, and carries the parse diagnostic unmodified.
func (in *Interp) EvalLine(line string) error {
	r := tokens(line)
	if !r.Ok() {
		return errors.New(r.Message())
	}

	for _, word := range r.Value() {
		if value, err := strconv.Atoi(word); err == nil {
			in.Push(value)
			continue
		}
		in.runWord(word)
	}
	return nil
}

// runWord looks up word verbatim in the command table and executes it.
func (in *Interp) runWord(word string) {
	w, ok := in.words[word]
	if !ok {
		fmt.Fprintf(in.out, "Error: Unknown command '%s'\n", word)
		return
	}
	w(in)
}
