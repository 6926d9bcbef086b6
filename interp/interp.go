// Package interp implements the CBASIC word interpreter: a mutable
// integer stack plus a table of named zero-argument commands, driven one
// line of input at a time. Lines are tokenized with the parse package and
// each token is either pushed as an integer or executed as a word.
package interp

import (
	"fmt"
	"io"
	"strings"
)

// Word is a command executed against the interpreter.
type Word func(in *Interp)

// Interp holds all interpreter state: the data stack, the word table, and
// the writer diagnostics and word output go to. There is no package-level
// state; independent instances do not interfere.
type Interp struct {
	stack []int
	words map[string]Word
	out   io.Writer
}

// New returns an interpreter with an empty stack and the builtin words
// registered. Output and diagnostics are written to out.
func New(out io.Writer) *Interp {
	in := &Interp{
		words: make(map[string]Word),
		out:   out,
	}
	in.registerBuiltins()
	return in
}

// Register binds w under name. The name is stored as given plus in its
// lower- and upper-case forms, so registered words are found regardless
// of how the user cases them; lookup itself is verbatim.
func (in *Interp) Register(name string, w Word) {
	in.words[name] = w
	in.words[strings.ToLower(name)] = w
	in.words[strings.ToUpper(name)] = w
}

// Alias binds alias to the word currently bound to existing. Unlike
// Register it adds only the one spelling given.
func (in *Interp) Alias(existing, alias string) {
	w, ok := in.words[existing]
	if !ok {
		fmt.Fprintf(in.out, "Error: Unknown command '%s'\n", existing)
		return
	}
	in.words[alias] = w
}

// Push puts value on top of the data stack.
func (in *Interp) Push(value int) {
	in.stack = append(in.stack, value)
}

// Pop removes and returns the top of the data stack. The second return
// is false when the stack is empty.
func (in *Interp) Pop() (int, bool) {
	if len(in.stack) == 0 {
		return 0, false
	}
	v := in.stack[len(in.stack)-1]
	in.stack = in.stack[:len(in.stack)-1]
	return v, true
}

// Stack returns a copy of the data stack, bottom first.
func (in *Interp) Stack() []int {
	out := make([]int, len(in.stack))
	copy(out, in.stack)
	return out
}
