//go:build unit
// +build unit

package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vortex-fintech/periods/errors"
)

func TestToGRPCStatus(t *testing.T) {
	errResp := errors.UnsupportedError("period", "decade")
	err := errResp.ToGRPC()

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "Unsupported period", st.Message())
}

func TestGRPCRoundTrip(t *testing.T) {
	in := errors.ValidationViolations([]errors.FieldViolation{
		{Field: "Period", Reason: "invalid_choice", Description: "Period validation failed (oneof)"},
	}).WithDetail("rule", "monthly-report")

	out := errors.FromGRPC(in.ToGRPC())

	assert.Equal(t, codes.InvalidArgument, out.Code)
	assert.Equal(t, in.Message, out.Message)
	assert.Equal(t, in.Reason, out.Reason)
	assert.Equal(t, "monthly-report", out.Details["rule"])
	require.Len(t, out.Violations, 1)
	assert.Equal(t, "Period", out.Violations[0].Field)
	assert.Equal(t, "Period validation failed (oneof)", out.Violations[0].Description)
}

func TestFromGRPCPlainStatus(t *testing.T) {
	err := status.Error(codes.NotFound, "nothing here")
	out := errors.FromGRPC(err)

	assert.Equal(t, codes.NotFound, out.Code)
	assert.Equal(t, "nothing here", out.Message)
	assert.Empty(t, out.Details)
}
