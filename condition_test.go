package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-outcome/outcome"
)

func TestCondition_Message(t *testing.T) {
	tests := []struct {
		cond outcome.Condition
		want string
	}{
		{outcome.ConditionLogic, "Logic error"},
		{outcome.ConditionRuntime, "Runtime error"},
		{outcome.ConditionResource, "Resource error"},
		{outcome.ConditionAccess, "Access error"},
		{outcome.ConditionOther, "Other error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.cond.Message())
		})
	}
}

func TestCondition_Message_Unrecognized(t *testing.T) {
	require.Equal(t, "Unrecognized error condition", outcome.Condition(42).Message())
}

func TestDefaultCondition(t *testing.T) {
	tests := []struct {
		name  string
		codes []outcome.Code
		want  outcome.Condition
	}{
		{
			name: "logic",
			codes: []outcome.Code{
				outcome.CodeInvalidArgument,
				outcome.CodeLengthError,
				outcome.CodeLogicError,
			},
			want: outcome.ConditionLogic,
		},
		{
			name: "runtime",
			codes: []outcome.Code{
				outcome.CodeValueTooSmall,
				outcome.CodeNonexistentLocalTime,
				outcome.CodeAmbiguousLocalTime,
				outcome.CodeFormatError,
				outcome.CodeRuntimeError,
			},
			want: outcome.ConditionRuntime,
		},
		{
			name: "resource",
			codes: []outcome.Code{
				outcome.CodeAllocationFailure,
				outcome.CodeTypeIDFailure,
				outcome.CodeCastFailure,
			},
			want: outcome.ConditionResource,
		},
		{
			name: "access",
			codes: []outcome.Code{
				outcome.CodeOptionalAccessFailure,
				outcome.CodeExpectedAccessFailure,
				outcome.CodeVariantAccessFailure,
				outcome.CodeWeakRefFailure,
				outcome.CodeCallFailure,
			},
			want: outcome.ConditionAccess,
		},
		{
			name: "other",
			codes: []outcome.Code{
				outcome.CodeGenericFault,
				outcome.CodeUnknownFault,
				outcome.CodeUnknownError,
			},
			want: outcome.ConditionOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, code := range tt.codes {
				require.Equal(t, tt.want, outcome.DefaultCondition(code),
					"code %d", code)
			}
		})
	}
}

// The mapping is total: values outside the catalog land in the other bucket
// instead of failing.
func TestDefaultCondition_Unrecognized(t *testing.T) {
	require.Equal(t, outcome.ConditionOther, outcome.DefaultCondition(outcome.Code(999)))
	require.Equal(t, outcome.ConditionOther, outcome.DefaultCondition(outcome.Code(0)))
}

func TestCondition_DomainCode(t *testing.T) {
	dc := outcome.ConditionAccess.DomainCode()

	require.Equal(t, outcome.ConditionDomain(), dc.Domain())
	require.Equal(t, int(outcome.ConditionAccess), dc.Value())
	require.Equal(t, "Access error", dc.Message())
}
