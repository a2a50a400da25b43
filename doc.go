// Package outcome provides a typed, classifiable error value and a
// Result type for uniform failure handling.
//
// The package defines a fixed catalog of fault codes beyond the platform's
// errno set, groups them into five broad conditions, and translates
// heterogeneous fault sources (panics, errno-style side channels, integer
// sentinel returns, pattern-engine faults) into a single Error value usable
// as the failure arm of Result[T].
//
// # Features
//
//   - Numeric fault codes partitioned into logic, runtime, resource, access,
//     and other conditions, with a total default mapping
//   - Domain-tagged codes: equal numbers from different domains are distinct
//   - Immutable Error value with context chaining and code-only equality
//   - Generic Result[T] with transform/chain/recover combinators
//   - Panic translation via a priority-ordered fault dispatch
//   - errno-style side-channel and -1 sentinel translators
//   - Pattern-engine fault translation, bridged to regexp/syntax
//
// # Design Principles
//
//   - Value semantics: Error and Result are plain values, never shared state
//   - No operation in this package panics or returns a bare error; fallible
//     operations return Result
//   - Classification queries drive control flow; message text is diagnostic
//   - The translators absorb every abnormal termination; the catch-all arm
//     guarantees totality
//
// # Quick Start
//
// Constructing and classifying errors:
//
//	err := outcome.NewError(outcome.CodeInvalidArgument, "parse config")
//	if err.Is(outcome.ConditionLogic) {
//	    // all logic-family faults land here
//	}
//
// Returning results:
//
//	func load(path string) outcome.Result[string] {
//	    if path == "" {
//	        return outcome.Fail[string](outcome.CodeInvalidArgument, "load")
//	    }
//	    return outcome.Success(path)
//	}
//
// Absorbing panics at a boundary:
//
//	res := outcome.Try(func() int {
//	    return riskyParse(input) // may panic with an outcome.Fault
//	}, "parse")
//
// Recovering:
//
//	value := outcome.OrElse(res, 0)
//
// # Fault Codes
//
// The registry defines codes for all common abnormal terminations:
//
//   - Logic faults: CodeInvalidArgument, CodeLengthError, CodeLogicError
//   - Runtime faults: CodeValueTooSmall, CodeNonexistentLocalTime,
//     CodeAmbiguousLocalTime, CodeFormatError, CodeRuntimeError
//   - Resource faults: CodeAllocationFailure, CodeTypeIDFailure,
//     CodeCastFailure
//   - Access faults: CodeOptionalAccessFailure, CodeExpectedAccessFailure,
//     CodeVariantAccessFailure, CodeWeakRefFailure, CodeCallFailure
//   - Fallbacks: CodeGenericFault, CodeUnknownFault, CodeUnknownError
//
// Every code has a default Condition; Error.Is with a Condition candidate
// matches through that mapping.
//
// # Side Channel
//
// The package models an errno-like ambient fault register. It is
// process-wide state: translators clear it before running an operation and
// read-and-clear it afterward. Concurrent callers of the side-channel
// translators must serialize access externally; the register itself is
// atomic, so reads are never torn, but interleaved operations can overwrite
// each other's indication.
//
// # Concurrency
//
// Error, DomainCode, and Result are value types with no locks and no shared
// ownership. Copy them freely. The only shared state in the package is the
// side-channel register described above.
package outcome
