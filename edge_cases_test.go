package outcome_test

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-outcome/outcome"
)

// Construction never fails, even for values outside the catalog; lookups
// fall through to the unrecognized message.
func TestEdge_UnrecognizedCode(t *testing.T) {
	err := outcome.NewError(outcome.Code(999), "odd")

	require.False(t, err.IsZero())
	require.Equal(t, 999, err.Value())
	require.Equal(t, "odd: Unrecognized fault code", err.Message())
	require.True(t, err.Is(outcome.ConditionOther),
		"codes outside the catalog default to the other condition")
}

func TestEdge_ZeroErrorMessage(t *testing.T) {
	var err outcome.Error
	require.Equal(t, "Success", err.Message())

	withCtx := outcome.NewError(outcome.Errno(0), "no fault")
	require.True(t, withCtx.IsZero())
	require.Equal(t, "no fault: Success", withCtx.Message())
}

func TestEdge_SwapWithSelf(t *testing.T) {
	e := outcome.NewError(outcome.CodeLengthError, "self")
	outcome.Swap(&e, &e)

	require.Equal(t, int(outcome.CodeLengthError), e.Value())
	require.Equal(t, "self", e.Context())
}

func TestEdge_FirstOfSingle(t *testing.T) {
	ok := outcome.FirstOf(outcome.Success("only"))
	require.Equal(t, "only", ok.Value())

	fail := outcome.FirstOf(outcome.Fail[string](outcome.CodeFormatError, "e"))
	require.False(t, fail.OK())
	require.True(t, fail.Err().Is(outcome.Errno(syscall.EIO)))
	require.Equal(t, "e: Format error: "+syscall.EIO.Error(), fail.Err().Message())
}

// A -1 return without a register indication is still a failure under the
// sentinel convention; the error simply carries the zero code.
func TestEdge_SentinelWithoutIndication(t *testing.T) {
	r := outcome.InvokeSyscall(func() int { return -1 }, "probe")

	require.False(t, r.OK())
	require.True(t, r.Err().IsZero())
	require.Equal(t, "probe: Success", r.Err().Message())
}

// Context strings containing the separator sequence are carried verbatim;
// rendering only ever prepends, never parses.
func TestEdge_ContextWithSeparators(t *testing.T) {
	err := outcome.NewError(outcome.CodeUnknownFault, "a: b; c")
	require.Equal(t, "a: b; c: Unknown fault", err.Message())
}

func TestEdge_ConditionAgainstZeroError(t *testing.T) {
	var err outcome.Error
	require.False(t, err.Is(outcome.ConditionLogic))
	require.False(t, err.Is(outcome.ConditionOther),
		"platform-domain zero code has no registry default condition")
}
