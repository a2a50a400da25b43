package outcome

// Code identifies one concrete fault kind in the registry domain.
// Codes are small positive integers, stable for the life of the process.
// The zero value is reserved to mean "no fault".
type Code int

const (
	// Logic faults.

	// CodeInvalidArgument indicates an argument that violates the callee's contract.
	CodeInvalidArgument Code = iota + 1

	// CodeLengthError indicates a length or size limit violation.
	CodeLengthError

	// CodeLogicError indicates a logic-family fault with no more specific code.
	CodeLogicError

	// Runtime faults.

	// CodeValueTooSmall indicates an arithmetic underflow.
	CodeValueTooSmall

	// CodeNonexistentLocalTime indicates a local time that never occurred
	// (skipped by a zone transition).
	CodeNonexistentLocalTime

	// CodeAmbiguousLocalTime indicates a local time that occurred twice
	// (repeated by a zone transition).
	CodeAmbiguousLocalTime

	// CodeFormatError indicates a text formatting fault.
	CodeFormatError

	// CodeRuntimeError indicates a runtime-family fault with no more specific code.
	CodeRuntimeError

	// Resource faults.

	// CodeAllocationFailure indicates a failed allocation.
	CodeAllocationFailure

	// CodeTypeIDFailure indicates a dynamic type identification failure.
	CodeTypeIDFailure

	// CodeCastFailure indicates an invalid cast or failed type assertion.
	CodeCastFailure

	// Access faults.

	// CodeOptionalAccessFailure indicates access to a missing optional value.
	CodeOptionalAccessFailure

	// CodeExpectedAccessFailure indicates access to the value arm of a failed result.
	CodeExpectedAccessFailure

	// CodeVariantAccessFailure indicates access to the wrong arm of a variant.
	CodeVariantAccessFailure

	// CodeWeakRefFailure indicates dereference of an expired weak reference.
	CodeWeakRefFailure

	// CodeCallFailure indicates invocation of an uncallable target.
	CodeCallFailure

	// Fallback faults.

	// CodeGenericFault indicates a named fault that fits no specific code.
	CodeGenericFault

	// CodeUnknownFault indicates a fault value of an unrecognized kind.
	CodeUnknownFault

	// CodeUnknownError indicates an abnormal termination that carried no
	// fault value at all.
	CodeUnknownError
)

// codeMessages is the registry message table. Lookups outside the table fall
// through to an "unrecognized" message, never fail.
var codeMessages = map[Code]string{
	CodeInvalidArgument:       "Invalid argument",
	CodeLengthError:           "Length error",
	CodeLogicError:            "Logic fault",
	CodeValueTooSmall:         "Value too small (underflow)",
	CodeNonexistentLocalTime:  "Nonexistent local time",
	CodeAmbiguousLocalTime:    "Ambiguous local time",
	CodeFormatError:           "Format error",
	CodeRuntimeError:          "Runtime fault",
	CodeAllocationFailure:     "Allocation failure",
	CodeTypeIDFailure:         "Type identification failure",
	CodeCastFailure:           "Invalid cast",
	CodeOptionalAccessFailure: "Missing optional value",
	CodeExpectedAccessFailure: "Missing expected value",
	CodeVariantAccessFailure:  "Wrong variant arm accessed",
	CodeWeakRefFailure:        "Expired weak reference",
	CodeCallFailure:           "Uncallable target invoked",
	CodeGenericFault:          "Unclassified fault",
	CodeUnknownFault:          "Unknown fault",
	CodeUnknownError:          "Unknown error",
}

// Message returns the registry's human-readable message for the code.
// Unrecognized values yield a fixed fallback message.
func (c Code) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "Unrecognized fault code"
}

// DomainCode resolves the code to its (domain, value) pair in the registry domain.
func (c Code) DomainCode() DomainCode {
	return DomainCode{domain: registrySingleton, value: int(c)}
}
