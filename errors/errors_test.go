//go:build unit
// +build unit

package errors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/vortex-fintech/periods/errors"
)

func TestNew(t *testing.T) {
	details := map[string]string{"foo": "bar"}
	errResp := errors.New("custom error", codes.Aborted, details)

	assert.Equal(t, codes.Aborted, errResp.Code)
	assert.Equal(t, "custom error", errResp.Message)
	assert.Equal(t, details, errResp.Details)
}

func TestUnsupportedError(t *testing.T) {
	errResp := errors.UnsupportedError("period", "decade")

	assert.Equal(t, codes.InvalidArgument, errResp.Code)
	assert.Equal(t, "Unsupported period", errResp.Message)
	assert.Equal(t, errors.Reason("invalid_choice"), errResp.Reason)
	assert.Equal(t, map[string]string{"period": "decade"}, errResp.Details)
}

func TestValidationError(t *testing.T) {
	fields := map[string]string{"Name": "required", "Period": "invalid_choice"}
	errResp := errors.ValidationError(fields)

	assert.Equal(t, codes.InvalidArgument, errResp.Code)
	assert.Equal(t, "Validation failed", errResp.Message)
	assert.Equal(t, fields, errResp.Details)
}

func TestValidationViolations(t *testing.T) {
	vs := []errors.FieldViolation{{Field: "Period", Reason: "invalid_choice"}}
	errResp := errors.ValidationViolations(vs)

	assert.Equal(t, codes.InvalidArgument, errResp.Code)
	assert.Equal(t, vs, errResp.Violations)
}

func TestWithHelpers(t *testing.T) {
	errResp := errors.InvalidArgumentError.
		WithReason("invalid_choice").
		WithDetail("period", "decade")

	assert.Equal(t, errors.Reason("invalid_choice"), errResp.Reason)
	assert.Equal(t, "decade", errResp.Details["period"])

	// Исходное значение не мутируется.
	assert.Empty(t, errors.InvalidArgumentError.Details)
}

func TestErrorIsJSON(t *testing.T) {
	errResp := errors.UnsupportedError("period", "decade")
	s := errResp.Error()

	assert.True(t, strings.Contains(s, `"InvalidArgument"`), s)
	assert.True(t, strings.Contains(s, `"decade"`), s)
}

func TestPredefined(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, errors.InvalidArgumentError.Code)
	assert.Equal(t, codes.Internal, errors.InternalError.Code)
	assert.Equal(t, codes.Unknown, errors.UnknownError.Code)
	assert.Equal(t, errors.UnknownError, errors.Unknown())
}
