package outcome

import (
	"errors"
	"regexp/syntax"
	"runtime"
	"strings"
	"syscall"
)

// Try executes op and returns its value in the success arm. If op panics,
// the recovered payload is classified into an Error and returned in the
// failure arm; Try itself never panics.
//
// Classification is most-specific-first over a fixed priority order; the
// first matching arm wins and the catch-all arm guarantees totality. The
// caller context is prepended to the fault's own text as "context: text";
// when either side is empty the other stands alone.
func Try[T any](op func() T, context string) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Failure[T](classifyRecovered(rec, context))
		}
	}()
	return Success(op())
}

// Run is Try for operations with no payload.
func Run(op func(), context string) (r UnitResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Failure[Unit](classifyRecovered(rec, context))
		}
	}()
	op()
	return Success(Unit{})
}

// faultCodes maps each catalog kind to its registry or generic-domain code.
// Kinds with a platform-native meaning (domain violation, out-of-range,
// overflow) resolve to the generic domain; the rest resolve to the registry.
var faultCodes = map[FaultKind]CodeRef{
	FaultInvalidArgument: CodeInvalidArgument,
	FaultDomainViolation: Errno(syscall.EDOM),
	FaultLength:          CodeLengthError,
	FaultIndex:           Errno(syscall.ERANGE),
	FaultLogic:           CodeLogicError,

	FaultRange:                Errno(syscall.ERANGE),
	FaultOverflow:             Errno(syscall.EOVERFLOW),
	FaultUnderflow:            CodeValueTooSmall,
	FaultNonexistentLocalTime: CodeNonexistentLocalTime,
	FaultAmbiguousLocalTime:   CodeAmbiguousLocalTime,
	FaultFormat:               CodeFormatError,
	FaultRuntime:              CodeRuntimeError,

	FaultAllocation: CodeAllocationFailure,
	FaultTypeID:     CodeTypeIDFailure,
	FaultCast:       CodeCastFailure,

	FaultOptionalAccess: CodeOptionalAccessFailure,
	FaultExpectedAccess: CodeExpectedAccessFailure,
	FaultVariantAccess:  CodeVariantAccessFailure,
	FaultWeakRef:        CodeWeakRefFailure,
	FaultFunctionCall:   CodeCallFailure,
}

// classifyRecovered converts a recovered panic payload into an Error.
//
// The dispatch order is part of the contract:
//
//  1. Fault — the tagged catalog; unknown kinds fall to CodeGenericFault.
//  2. PatternFault — delegated to the pattern translator with the
//     description already rendered into the context.
//  3. CodedFault — propagates its embedded (domain, value) pair.
//  4. *syntax.Error — the pattern engine's own compile faults.
//  5. *runtime.TypeAssertionError — invalid cast.
//  6. Other runtime.Error — bounds faults map to the generic out-of-range
//     code, the rest to the generic runtime code.
//  7. Any other error — CodeUnknownFault, its text joined to context.
//  8. Any non-error payload — CodeUnknownError, context alone.
func classifyRecovered(rec any, context string) Error {
	err, isErr := rec.(error)
	if !isErr {
		return NewError(CodeUnknownError, context)
	}

	var fault Fault
	if errors.As(err, &fault) {
		code, ok := faultCodes[fault.Kind]
		if !ok {
			code = CodeGenericFault
		}
		return NewError(code, joinContext(context, fault.Text))
	}

	var pattern PatternFault
	if errors.As(err, &pattern) {
		return patternError(pattern.Code, joinContext(context, pattern.Text), true)
	}

	var coded CodedFault
	if errors.As(err, &coded) {
		return NewError(coded.Code, joinContext(context, coded.Text))
	}

	var compile *syntax.Error
	if errors.As(err, &compile) {
		return patternError(PatternCodeFromSyntax(compile.Code),
			joinContext(context, compile.Error()), true)
	}

	var assertion *runtime.TypeAssertionError
	if errors.As(err, &assertion) {
		return NewError(CodeCastFailure, joinContext(context, assertion.Error()))
	}

	var rt runtime.Error
	if errors.As(err, &rt) {
		if isBoundsFault(rt) {
			return NewError(Errno(syscall.ERANGE), joinContext(context, rt.Error()))
		}
		return NewError(CodeRuntimeError, joinContext(context, rt.Error()))
	}

	return NewError(CodeUnknownFault, joinContext(context, err.Error()))
}

// isBoundsFault recognizes index and slice bounds panics. The runtime does
// not export their types, so the message prefix is the only stable signal.
func isBoundsFault(err runtime.Error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "runtime error: index out of range") ||
		strings.HasPrefix(msg, "runtime error: slice bounds out of range")
}

// joinContext renders "a: b" when both parts are non-empty, else whichever
// part is non-empty.
func joinContext(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + ": " + b
	}
}
