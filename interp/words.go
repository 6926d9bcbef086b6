package interp

import "fmt"

// registerBuiltins installs the builtin vocabulary and its aliases.
func (in *Interp) registerBuiltins() {
	in.Register("PRINT", printStack)
	in.Register("ADD", binary("ADD", func(a, b int) int { return a + b }))
	in.Register("SUB", binary("SUB", func(a, b int) int { return a - b }))
	in.Alias("PRINT", "P")
	in.Alias("ADD", "+")
	in.Alias("SUB", "-")
}

// printStack writes the stack contents, bottom first.
func printStack(in *Interp) {
	fmt.Fprint(in.out, "Stack: ")
	for _, item := range in.stack {
		fmt.Fprintf(in.out, "%d ", item)
	}
	fmt.Fprintln(in.out)
}

// binary builds a word that pops two values and pushes op(a, b), where b
// is the top of the stack. With fewer than two values it prints a
// diagnostic and leaves the stack untouched.
func binary(name string, op func(a, b int) int) Word {
	return func(in *Interp) {
		if len(in.stack) < 2 {
			fmt.Fprintf(in.out, "Error: %s requires at least two values on the stack.\n", name)
			return
		}
		b, _ := in.Pop()
		a, _ := in.Pop()
		in.Push(op(a, b))
	}
}
