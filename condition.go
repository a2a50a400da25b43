package outcome

// Condition is the coarse fault category a Code belongs to.
// Every Code has exactly one default Condition, established by a static
// lookup table; the mapping is total, with ConditionOther covering any
// unrecognized value.
type Condition int

const (
	// ConditionLogic groups faults in program logic and invalid operations.
	ConditionLogic Condition = iota + 1

	// ConditionRuntime groups faults occurring during program execution.
	ConditionRuntime

	// ConditionResource groups faults in resource allocation and management.
	ConditionResource

	// ConditionAccess groups invalid accesses of data structures.
	ConditionAccess

	// ConditionOther covers faults that fit no other category.
	ConditionOther
)

var conditionMessages = map[Condition]string{
	ConditionLogic:    "Logic error",
	ConditionRuntime:  "Runtime error",
	ConditionResource: "Resource error",
	ConditionAccess:   "Access error",
	ConditionOther:    "Other error",
}

// Message returns the fixed message for the condition.
// Unrecognized values yield a fixed fallback message.
func (c Condition) Message() string {
	if msg, ok := conditionMessages[c]; ok {
		return msg
	}
	return "Unrecognized error condition"
}

// DomainCode resolves the condition to its representative (domain, value)
// pair in the condition domain.
func (c Condition) DomainCode() DomainCode {
	return DomainCode{domain: conditionSingleton, value: int(c)}
}

// defaultConditions maps each registry code to its default condition.
var defaultConditions = map[Code]Condition{
	CodeInvalidArgument: ConditionLogic,
	CodeLengthError:     ConditionLogic,
	CodeLogicError:      ConditionLogic,

	CodeValueTooSmall:        ConditionRuntime,
	CodeNonexistentLocalTime: ConditionRuntime,
	CodeAmbiguousLocalTime:   ConditionRuntime,
	CodeFormatError:          ConditionRuntime,
	CodeRuntimeError:         ConditionRuntime,

	CodeAllocationFailure: ConditionResource,
	CodeTypeIDFailure:     ConditionResource,
	CodeCastFailure:       ConditionResource,

	CodeOptionalAccessFailure: ConditionAccess,
	CodeExpectedAccessFailure: ConditionAccess,
	CodeVariantAccessFailure:  ConditionAccess,
	CodeWeakRefFailure:        ConditionAccess,
	CodeCallFailure:           ConditionAccess,

	CodeGenericFault: ConditionOther,
	CodeUnknownFault: ConditionOther,
	CodeUnknownError: ConditionOther,
}

// DefaultCondition returns the default condition for a registry code.
// Codes outside the table map to ConditionOther.
func DefaultCondition(code Code) Condition {
	if cond, ok := defaultConditions[code]; ok {
		return cond
	}
	return ConditionOther
}
