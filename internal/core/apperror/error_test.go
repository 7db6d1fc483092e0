package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPersistence_KeepsCauseInDetails(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistence(cause)

	assert.Equal(t, CodePersistence, err.Code)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, "connection refused", err.Details["cause"])
	assert.ErrorIs(t, err, cause)
}

func TestAsAppError_UnwrapsThroughChain(t *testing.T) {
	inner := NewNotFound("customer", "abc")
	wrapped := fmt.Errorf("service layer: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.True(t, IsNotFound(wrapped))
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation("bad input"), http.StatusBadRequest},
		{"not found", NewNotFound("user", 1), http.StatusNotFound},
		{"unauthorized", NewUnauthorized("no token"), http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), http.StatusForbidden},
		{"duplicate", NewDuplicate("tag", "name", "urgent"), http.StatusConflict},
		{"transport", NewTransport(errors.New("timeout")), http.StatusBadGateway},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.err))
		})
	}
}

func TestWithDetail_Accumulates(t *testing.T) {
	err := NewValidation("bad field").
		WithDetail("field", "name").
		WithDetail("value", "")

	assert.Equal(t, "name", err.Details["field"])
	assert.Equal(t, "", err.Details["value"])
}
