package outcome

import (
	"regexp/syntax"
	"syscall"
)

// PatternCode identifies one fault kind of the pattern-matching engine.
type PatternCode int

const (
	// PatternBadCollation is an invalid collating element name.
	PatternBadCollation PatternCode = iota + 1

	// PatternBadCharClass is an invalid character class name.
	PatternBadCharClass

	// PatternBadEscape is an invalid escaped character or a trailing escape.
	PatternBadEscape

	// PatternBadBackreference is an invalid back reference.
	PatternBadBackreference

	// PatternBracketMismatch is mismatched square brackets.
	PatternBracketMismatch

	// PatternParenMismatch is mismatched parentheses.
	PatternParenMismatch

	// PatternBraceMismatch is mismatched curly braces.
	PatternBraceMismatch

	// PatternBadBraceRange is an invalid range in a {} repeat expression.
	PatternBadBraceRange

	// PatternBadCharRange is an invalid character range.
	PatternBadCharRange

	// PatternCompileOutOfMemory is insufficient memory to compile the
	// expression into a state machine.
	PatternCompileOutOfMemory

	// PatternBadRepeat is a repeat operator with no preceding expression.
	PatternBadRepeat

	// PatternComplexityExceeded is a match whose complexity exceeded a
	// predefined level.
	PatternComplexityExceeded

	// PatternMatchOutOfMemory is insufficient memory to perform a match.
	PatternMatchOutOfMemory
)

// patternFault pairs the descriptive message of a pattern fault with the
// code it classifies as.
type patternFault struct {
	code CodeRef
	desc string
}

var patternFaults = map[PatternCode]patternFault{
	PatternBadCollation:       {Errno(syscall.EINVAL), "Regex error: invalid collating element name"},
	PatternBadCharClass:       {Errno(syscall.EINVAL), "Regex error: invalid character class name"},
	PatternBadEscape:          {Errno(syscall.EINVAL), "Regex error: invalid escaped character or a trailing escape"},
	PatternBadBackreference:   {Errno(syscall.EINVAL), "Regex error: invalid back reference"},
	PatternBracketMismatch:    {Errno(syscall.EINVAL), "Regex error: mismatched square brackets ('[' and ']')"},
	PatternParenMismatch:      {Errno(syscall.EINVAL), "Regex error: mismatched parentheses ('(' and ')')"},
	PatternBraceMismatch:      {Errno(syscall.EINVAL), "Regex error: mismatched curly braces ('{' and '}')"},
	PatternBadBraceRange:      {Errno(syscall.EINVAL), "Regex error: invalid range in a {} expression"},
	PatternBadCharRange:       {Errno(syscall.EINVAL), "Regex error: invalid character range"},
	PatternCompileOutOfMemory: {Errno(syscall.ENOMEM), "Regex error: insufficient memory to convert the expression into a finite state machine"},
	PatternBadRepeat:          {Errno(syscall.EINVAL), "Regex error: '*', '?', '+' or '{' was not preceded by a valid regular expression"},
	PatternComplexityExceeded: {Errno(syscall.ERANGE), "Regex error: the complexity of an attempted match exceeded a predefined level"},
	PatternMatchOutOfMemory:   {Errno(syscall.ENOMEM), "Regex error: insufficient memory to perform a match"},
}

// FailFromPattern creates a failure Result from a pattern-engine fault
// identifier. The fault's descriptive message is appended after the caller
// context; unrecognized identifiers classify as CodeUnknownError.
func FailFromPattern[T any](code PatternCode, context string) Result[T] {
	return Failure[T](patternError(code, context, false))
}

// patternError translates a pattern fault into an Error. When
// alreadyDescribed is set the context carries a previously rendered message
// and the generic description is suppressed, so re-wrapped faults are not
// described twice. The flag is explicit state, never a marker embedded in
// the context text.
func patternError(code PatternCode, context string, alreadyDescribed bool) Error {
	fault, ok := patternFaults[code]
	if !ok {
		fault = patternFault{CodeUnknownError, "Regex error: unknown error"}
	}
	if alreadyDescribed {
		return NewError(fault.code, context)
	}
	return NewError(fault.code, joinContext(context, fault.desc))
}

// PatternCodeFromSyntax maps the Go pattern engine's own fault identifiers
// into the catalog. Identifiers with no counterpart map to zero, which the
// translator classifies as an unknown pattern fault.
func PatternCodeFromSyntax(code syntax.ErrorCode) PatternCode {
	switch code {
	case syntax.ErrInvalidCharClass:
		return PatternBadCharClass
	case syntax.ErrInvalidCharRange:
		return PatternBadCharRange
	case syntax.ErrInvalidEscape, syntax.ErrTrailingBackslash:
		return PatternBadEscape
	case syntax.ErrInvalidNamedCapture:
		return PatternParenMismatch
	case syntax.ErrInvalidRepeatOp, syntax.ErrMissingRepeatArgument, syntax.ErrInvalidPerlOp:
		return PatternBadRepeat
	case syntax.ErrInvalidRepeatSize:
		return PatternBadBraceRange
	case syntax.ErrMissingBracket:
		return PatternBracketMismatch
	case syntax.ErrMissingParen, syntax.ErrUnexpectedParen:
		return PatternParenMismatch
	case syntax.ErrNestingDepth, syntax.ErrLarge:
		return PatternComplexityExceeded
	default:
		return 0
	}
}
