package outcome

// Result is a two-armed container holding either a value of T or an Error.
// It is the uniform return shape for every fallible operation in this
// package. A Result owns its payload or its Error exclusively; it is a plain
// value and may be copied freely.
//
// The zero Result is a success carrying T's zero value.
type Result[T any] struct {
	value  T
	err    Error
	failed bool
}

// Unit is the payload of operations that succeed without producing a value.
type Unit struct{}

// Result aliases for common payload types.
type (
	UnitResult   = Result[Unit]
	StringResult = Result[string]
	IntResult    = Result[int]
	BoolResult   = Result[bool]
)

// Success wraps a value in the success arm.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps an Error in the failure arm.
func Failure[T any](err Error) Result[T] {
	return Result[T]{err: err, failed: true}
}

// Fail creates a failure Result from a code and context.
func Fail[T any](code CodeRef, context string) Result[T] {
	return Failure[T](NewError(code, context))
}

// OK reports whether the Result holds the success arm.
func (r Result[T]) OK() bool { return !r.failed }

// Value returns the payload, or T's zero value on failure.
func (r Result[T]) Value() T { return r.value }

// ValueOr returns the payload, or fallback on failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.failed {
		return fallback
	}
	return r.value
}

// Err returns the Error, or the zero Error on success.
func (r Result[T]) Err() Error { return r.err }

// Get unpacks the Result for plain-Go call sites: the payload and a nil
// error on success, or the zero payload and the Error on failure.
func (r Result[T]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
