package outcome

// FaultKind tags one entry in the closed catalog of abnormal-termination
// kinds the dispatcher in Try recognizes. Operations signal a classifiable
// failure by panicking with a Fault carrying the kind and diagnostic text.
type FaultKind int

const (
	// Logic-family kinds.

	// FaultInvalidArgument is an argument violating the callee's contract.
	FaultInvalidArgument FaultKind = iota + 1

	// FaultDomainViolation is an argument outside the operation's
	// mathematical domain.
	FaultDomainViolation

	// FaultLength is a length or size limit violation.
	FaultLength

	// FaultIndex is an out-of-bounds index.
	FaultIndex

	// FaultLogic is any other logic-family fault.
	FaultLogic

	// Runtime-family kinds.

	// FaultRange is a result outside the representable range.
	FaultRange

	// FaultOverflow is an arithmetic overflow.
	FaultOverflow

	// FaultUnderflow is an arithmetic underflow.
	FaultUnderflow

	// FaultNonexistentLocalTime is a local time skipped by a zone transition.
	FaultNonexistentLocalTime

	// FaultAmbiguousLocalTime is a local time repeated by a zone transition.
	FaultAmbiguousLocalTime

	// FaultFormat is a text formatting fault.
	FaultFormat

	// FaultRuntime is any other runtime-family fault.
	FaultRuntime

	// Resource and type kinds.

	// FaultAllocation is a failed allocation.
	FaultAllocation

	// FaultTypeID is a dynamic type identification failure.
	FaultTypeID

	// FaultCast is an invalid cast.
	FaultCast

	// Container and value access kinds.

	// FaultOptionalAccess is access to a missing optional value.
	FaultOptionalAccess

	// FaultExpectedAccess is access to the value arm of a failed result.
	FaultExpectedAccess

	// FaultVariantAccess is access to the wrong arm of a variant.
	FaultVariantAccess

	// FaultWeakRef is dereference of an expired weak reference.
	FaultWeakRef

	// FaultFunctionCall is invocation of an uncallable target.
	FaultFunctionCall

	// FaultGeneric is a named fault that fits no other kind.
	FaultGeneric
)

// Fault is the tagged abnormal-termination payload: a kind from the closed
// catalog plus diagnostic text. It implements error so it survives wrapping.
type Fault struct {
	Kind FaultKind
	Text string
}

// Error implements the error interface.
func (f Fault) Error() string { return f.Text }

// Raise panics with a Fault of the given kind and text. It is a convenience
// for operations run under Try.
func Raise(kind FaultKind, text string) {
	panic(Fault{Kind: kind, Text: text})
}

// CodedFault is an abnormal-termination payload that already carries its own
// (domain, value) pair, for faults originating in a code space rather than
// the kind catalog. The dispatcher propagates the embedded code unchanged.
type CodedFault struct {
	Code DomainCode
	Text string
}

// Error implements the error interface.
func (f CodedFault) Error() string { return f.Text }

// PatternFault is an abnormal-termination payload from the pattern-matching
// engine, carrying the engine's own fault identifier.
type PatternFault struct {
	Code PatternCode
	Text string
}

// Error implements the error interface.
func (f PatternFault) Error() string { return f.Text }
