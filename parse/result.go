package parse

// Result is the outcome of applying a [Parser] to an input string. It has
// exactly two variants: a success carrying the parsed value and the
// unconsumed suffix of the input, or a failure carrying a diagnostic
// message.
type Result[T any] struct {
	value     T
	remaining string
	message   string
	ok        bool
}

// Success returns a successful result carrying value and the unconsumed
// remainder of the input.
func Success[T any](value T, remaining string) Result[T] {
	return Result[T]{value: value, remaining: remaining, ok: true}
}

// Failure returns a failed result carrying a diagnostic message.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// Ok reports whether the result is a success.
func (r Result[T]) Ok() bool { return r.ok }

// Value returns the parsed value, or the zero value for failures.
func (r Result[T]) Value() T { return r.value }

// Remaining returns the unconsumed suffix of the input. It is always a
// suffix of the string the producing parser was applied to.
func (r Result[T]) Remaining() string { return r.remaining }

// Message returns the failure diagnostic, or "" for successes.
func (r Result[T]) Message() string { return r.message }

// fail forwards a failure under a different value type, keeping the
// message unchanged.
func fail[U, T any](r Result[T]) Result[U] {
	return Failure[U](r.message)
}
