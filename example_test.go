package outcome_test

import (
	"fmt"

	"github.com/go-outcome/outcome"
)

func ExampleNewError() {
	err := outcome.NewError(outcome.CodeInvalidArgument, "parse config")
	fmt.Println(err.Message())
	// Output: parse config: Invalid argument
}

func ExampleError_Is() {
	err := outcome.NewError(outcome.CodeAllocationFailure, "")

	fmt.Println(err.Is(outcome.CodeAllocationFailure))
	fmt.Println(err.Is(outcome.CodeCastFailure))
	fmt.Println(err.Is(outcome.ConditionResource))
	// Output:
	// true
	// false
	// true
}

func ExampleError_IsAnyOf() {
	err := outcome.NewError(outcome.CodeLengthError, "")

	retriable := err.IsAnyOf(outcome.CodeAllocationFailure, outcome.ConditionRuntime)
	invalid := err.IsAnyOf(outcome.CodeInvalidArgument, outcome.CodeLengthError)
	fmt.Println(retriable, invalid)
	// Output: false true
}

func ExampleTry() {
	divide := func(a, b int) outcome.Result[int] {
		return outcome.Try(func() int {
			if b == 0 {
				outcome.Raise(outcome.FaultInvalidArgument, "division by zero")
			}
			return a / b
		}, "divide")
	}

	fmt.Println(divide(10, 2).Value())
	fmt.Println(divide(10, 0).Err().Message())
	// Output:
	// 5
	// divide: division by zero: Invalid argument
}

func ExampleTransform() {
	r := outcome.Transform(outcome.Success(21), func(v int) int { return v * 2 })
	fmt.Println(r.Value())
	// Output: 42
}

func ExampleAndThen() {
	validate := func(name string) outcome.Result[string] {
		if name == "" {
			return outcome.Fail[string](outcome.CodeLengthError, "name")
		}
		return outcome.Success(name)
	}

	r := outcome.AndThen(outcome.Success(""), validate)
	fmt.Println(r.Err().Message())
	// Output: name: Length error
}

func ExampleOrElseWith() {
	r := outcome.Fail[int](outcome.CodeUnknownFault, "lookup")
	v := outcome.OrElseWith(r, func(e outcome.Error) int { return -1 })
	fmt.Println(v)
	// Output: -1
}

func ExampleFirstOf() {
	primary := outcome.Fail[string](outcome.CodeAllocationFailure, "primary")
	fallback := outcome.Success("from cache")

	r := outcome.FirstOf(primary, fallback)
	fmt.Println(r.Value())
	// Output: from cache
}

func ExampleError_Format() {
	err := outcome.NewError(outcome.CodeFormatError, "render")
	fmt.Printf("%+v\n", err)
	// Output:
	// render: Format error
	// (error_code: 7 (fault category))
}
