package outcome

import (
	"strings"
	"syscall"
)

// Domain identifies the code space a numeric fault value belongs to.
// Two numerically equal values from different domains are distinct faults.
//
// The package supplies three domains: the registry domain for Code values,
// the condition domain for Condition values, and the generic domain for
// platform errno values. Callers may supply their own Domain implementations
// for external code spaces; domain identity is pointer identity, so a custom
// domain should be a package-level singleton.
type Domain interface {
	// Name returns the domain's identifying name.
	Name() string

	// Message returns the human-readable message for a value in this domain.
	// It must be total: unrecognized values yield a fallback message.
	Message(value int) string
}

type registryDomain struct{}

func (registryDomain) Name() string             { return "fault" }
func (registryDomain) Message(value int) string { return Code(value).Message() }

type conditionDomain struct{}

func (conditionDomain) Name() string             { return "condition" }
func (conditionDomain) Message(value int) string { return Condition(value).Message() }

// genericDomain is the platform errno code space.
type genericDomain struct{}

func (genericDomain) Name() string { return "generic" }

func (genericDomain) Message(value int) string {
	if value == 0 {
		return "Success"
	}
	return syscall.Errno(value).Error()
}

var (
	registrySingleton  = &registryDomain{}
	conditionSingleton = &conditionDomain{}
	genericSingleton   = &genericDomain{}
)

// RegistryDomain returns the domain of the package's Code catalog.
func RegistryDomain() Domain { return registrySingleton }

// ConditionDomain returns the domain of the Condition catalog.
func ConditionDomain() Domain { return conditionSingleton }

// GenericDomain returns the platform errno domain.
func GenericDomain() Domain { return genericSingleton }

// DomainCode is a numeric fault value tagged with its owning domain.
// The zero value carries the generic domain's zero code and means "no fault".
type DomainCode struct {
	domain Domain
	value  int
}

// NewDomainCode pairs a value with a domain. A nil domain is treated as the
// generic domain.
func NewDomainCode(d Domain, value int) DomainCode {
	return DomainCode{domain: d, value: value}
}

// Errno resolves a platform errno value to its (domain, value) pair in the
// generic domain.
func Errno(e syscall.Errno) DomainCode {
	return DomainCode{domain: genericSingleton, value: int(e)}
}

// Domain returns the owning domain. The zero DomainCode reports the generic domain.
func (dc DomainCode) Domain() Domain {
	if dc.domain == nil {
		return genericSingleton
	}
	return dc.domain
}

// Value returns the raw numeric value.
func (dc DomainCode) Value() int { return dc.value }

// Message returns the owning domain's message for the value.
func (dc DomainCode) Message() string { return dc.Domain().Message(dc.value) }

// IsZero reports whether the pair means "no fault".
func (dc DomainCode) IsZero() bool { return dc.value == 0 }

// DomainCode returns the pair itself, satisfying CodeRef.
func (dc DomainCode) DomainCode() DomainCode { return dc }

// Equal reports whether both pairs name the same fault: same domain, same value.
func (dc DomainCode) Equal(other DomainCode) bool {
	return dc.Domain() == other.Domain() && dc.value == other.value
}

// Compare orders pairs by domain name, then value. The result is -1, 0, or +1.
//
// Ordering by name rather than domain identity keeps the order deterministic
// across processes.
func (dc DomainCode) Compare(other DomainCode) int {
	if c := strings.Compare(dc.Domain().Name(), other.Domain().Name()); c != 0 {
		return c
	}
	switch {
	case dc.value < other.value:
		return -1
	case dc.value > other.value:
		return 1
	default:
		return 0
	}
}

// CodeRef is anything that resolves to a (domain, value) pair: a registry
// Code, a Condition, a raw DomainCode, or an external domain's pair.
type CodeRef interface {
	DomainCode() DomainCode
}
