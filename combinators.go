package outcome

import (
	"strings"
	"syscall"
)

// Transform applies f to the payload of a success and rewraps the result.
// A failure passes through unchanged without invoking f.
func Transform[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.OK() {
		return Failure[U](r.Err())
	}
	return Success(f(r.Value()))
}

// AndThen chains a fallible step: f runs on the payload of a success and its
// Result is returned without nested wrapping. A failure short-circuits
// without invoking f.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.OK() {
		return Failure[U](r.Err())
	}
	return f(r.Value())
}

// OrElse recovers a plain value from a Result: the payload on success,
// fallback on failure.
func OrElse[T any](r Result[T], fallback T) T {
	return r.ValueOr(fallback)
}

// OrElseWith recovers a plain value from a Result, computing the fallback
// from the Error. The recover function runs only on failure.
func OrElseWith[T any](r Result[T], recover func(Error) T) T {
	if r.OK() {
		return r.Value()
	}
	return recover(r.Err())
}

// FirstOf returns the first success among the alternatives, in input order.
//
// If every alternative failed, the rendered failure messages are joined with
// "; " separators, in input order, into one combined error in the generic
// domain's unrecoverable (EIO) bucket. An empty input is itself a failure
// with an invalid-argument code.
func FirstOf[T any](results ...Result[T]) Result[T] {
	if len(results) == 0 {
		return Fail[T](Errno(syscall.EINVAL), "No alternatives provided")
	}

	messages := make([]string, 0, len(results))
	for _, r := range results {
		if r.OK() {
			return r
		}
		messages = append(messages, r.Err().Message())
	}

	return Fail[T](Errno(syscall.EIO), strings.Join(messages, "; "))
}
