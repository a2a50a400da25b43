package outcome

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

// Error is a domain-tagged fault code with free-text caller context.
// It is immutable after construction and has value semantics: copies are
// fully independent.
//
// The zero Error is the canonical "no fault" sentinel: IsZero reports true
// and Message renders the generic domain's success message.
//
// Equality, ordering, and hashing consider only the (domain, value) pair;
// context is diagnostic text and is excluded.
type Error struct {
	code    DomainCode
	context string
}

// NewError creates an Error from a code and optional context. It never fails.
// Condition operands resolve to their representative pair in the condition
// domain.
func NewError(code CodeRef, context string) Error {
	return Error{code: code.DomainCode(), context: context}
}

// Code returns the stored (domain, value) pair.
func (e Error) Code() DomainCode { return e.code }

// Value returns the raw numeric fault value for low-level interop.
func (e Error) Value() int { return e.code.Value() }

// Context returns the caller-supplied context, possibly empty.
func (e Error) Context() string { return e.context }

// CategoryName returns the owning domain's identifying name.
func (e Error) CategoryName() string { return e.code.Domain().Name() }

// IsZero reports whether the Error is the "no fault" sentinel.
func (e Error) IsZero() bool { return e.code.IsZero() }

// Message returns the rendered message: the domain's message for the code,
// prefixed with "context: " when context is non-empty.
func (e Error) Message() string {
	if e.context == "" {
		return e.code.Message()
	}
	return e.context + ": " + e.code.Message()
}

// Error implements the error interface, returning Message.
func (e Error) Error() string { return e.Message() }

// Is reports whether the Error matches the candidate code.
//
// A Code, DomainCode, or errno candidate matches when the stored
// (domain, value) pair equals the candidate's resolved pair. A Condition
// candidate additionally matches when the stored code's default condition
// equals it, so registry codes compare true against their broad category.
func (e Error) Is(candidate CodeRef) bool {
	if cond, ok := candidate.(Condition); ok {
		if e.code.Equal(cond.DomainCode()) {
			return true
		}
		return e.code.Domain() == Domain(registrySingleton) &&
			DefaultCondition(Code(e.code.Value())) == cond
	}
	return e.code.Equal(candidate.DomainCode())
}

// IsAnyOf reports whether the Error matches any of the candidates,
// evaluating left to right and stopping at the first match.
func (e Error) IsAnyOf(candidates ...CodeRef) bool {
	for _, c := range candidates {
		if e.Is(c) {
			return true
		}
	}
	return false
}

// Equal reports whether both errors carry the same (domain, value) pair.
// Context is excluded.
func (e Error) Equal(other Error) bool { return e.code.Equal(other.code) }

// Compare orders errors by (domain, value), for use in sorted containers.
// Context is excluded. The result is -1, 0, or +1.
func (e Error) Compare(other Error) int { return e.code.Compare(other.code) }

// Hash returns a hash keyed on (domain, value) only, consistent with Equal.
func (e Error) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(e.code.Domain().Name()))
	h.Write([]byte{':'})
	h.Write([]byte(strconv.Itoa(e.code.Value())))
	return h.Sum64()
}

// Format implements fmt.Formatter. The %v and %s verbs render Message;
// %+v appends the code and category:
//
//	<message>
//	(error_code: <value> (<category> category))
func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s\n(error_code: %d (%s category))",
				e.Message(), e.Value(), e.CategoryName())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Message())
	case 'q':
		fmt.Fprintf(s, "%q", e.Message())
	}
}

// Swap exchanges the state of two Errors. After the call each holds exactly
// the other's former (code, context) pair, with no residual aliasing.
func Swap(a, b *Error) {
	*a, *b = *b, *a
}
