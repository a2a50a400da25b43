package outcome

import (
	"sync/atomic"
	"syscall"
)

// lastErrno is the ambient side-channel fault register, the package's
// analog of the platform's errno. It is process-wide state: Go offers no
// per-thread storage, so unlike the platform register it is shared across
// goroutines. Access is atomic, so reads are never torn, but concurrent
// callers of the side-channel translators can overwrite each other's
// indication and must serialize externally.
var lastErrno atomic.Int64

// SetLastErrno records a failure indication in the ambient register, the
// way a failing low-level operation sets errno.
func SetLastErrno(e syscall.Errno) {
	lastErrno.Store(int64(e))
}

// ClearLastErrno resets the ambient register to the no-fault state.
func ClearLastErrno() {
	lastErrno.Store(0)
}

// LastError reads the ambient register as a generic-domain code and resets
// it to the no-fault state. The reset is mandatory: a stale indication
// would leak into the next check.
func LastError() DomainCode {
	e := lastErrno.Swap(0)
	return Errno(syscall.Errno(e))
}

// FailFromErrno creates a failure Result from the ambient register,
// consuming (and thereby resetting) the indication.
func FailFromErrno[T any](context string) Result[T] {
	return Fail[T](LastError(), context)
}

// WithErrno executes an operation that signals failure through the ambient
// register. The register is cleared first, so leftover state from unrelated
// prior calls cannot masquerade as a failure. If the register is nonzero
// after op returns, the return value is discarded and the indication is
// converted to a failure; otherwise the value is returned in the success
// arm.
//
// The register must be read immediately after op returns; any intervening
// operation on another goroutine is a potential corrupter of that state.
func WithErrno[T any](op func() T, context string) Result[T] {
	ClearLastErrno()

	value := op()
	if lastErrno.Load() != 0 {
		return FailFromErrno[T](context)
	}
	return Success(value)
}

// RunWithErrno is WithErrno for operations with no payload.
func RunWithErrno(op func(), context string) UnitResult {
	ClearLastErrno()

	op()
	if lastErrno.Load() != 0 {
		return FailFromErrno[Unit](context)
	}
	return Success(Unit{})
}

// InvokeSyscall executes an operation following the syscall convention: a
// return value of -1 signals failure with the ambient register set, and any
// other value (including 0) is success. The register is cleared before the
// call. op must not panic; this variant is restricted to non-panicking
// operations and performs no recovery.
func InvokeSyscall(op func() int, context string) IntResult {
	ClearLastErrno()

	result := op()
	if result == -1 {
		return FailFromErrno[int](context)
	}
	return Success(result)
}
