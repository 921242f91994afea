package comb

import "fmt"

// Result is the outcome of running a parser.
//
// On success OK is set, Value holds the produced value and Rest the
// unconsumed suffix. On failure Rest is the input the failing parser was
// given. Committed marks a failure raised after an AndThen accepted its
// first stage. It only decides where a failure is reported: such failures
// keep their position as they travel upward, and when every alternative of
// a choice fails the committed one is returned.
type Result[T any] struct {
	Rest      Input
	Value     T
	OK        bool
	Committed bool
}

// Success builds a successful result.
func Success[T any](rest Input, value T) Result[T] {
	return Result[T]{Rest: rest, Value: value, OK: true}
}

// Failure builds an uncommitted failure at the given input.
func Failure[T any](at Input) Result[T] {
	return Result[T]{Rest: at}
}

// fail re-types the failed result r for a composite parser that was given
// in. Uncommitted failures are reported at in; committed ones pass through.
func fail[T, U any](in Input, r Result[U]) Result[T] {
	if r.Committed {
		return Result[T]{Rest: r.Rest, Committed: true}
	}
	return Failure[T](in)
}

func (r Result[T]) String() string {
	if r.OK {
		return fmt.Sprintf("ok(%q, %v)", r.Rest.String(), r.Value)
	}
	if r.Committed {
		return fmt.Sprintf("fail!(%q)", r.Rest.String())
	}
	return fmt.Sprintf("fail(%q)", r.Rest.String())
}

// furthest picks the failure a choice reports once all its alternatives
// failed: the committed failure at the largest offset, otherwise a plain
// failure at in.
func furthest[T any](in Input, a, b Result[T]) Result[T] {
	switch {
	case a.Committed && b.Committed:
		if b.Rest.Offset() > a.Rest.Offset() {
			return b
		}
		return a
	case a.Committed:
		return a
	case b.Committed:
		return b
	}
	return Failure[T](in)
}
