package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharAnu2109/Cricket/internal/repository"
	"github.com/BharAnu2109/Cricket/internal/service"
	"github.com/BharAnu2109/Cricket/pkg/response"
)

func TestMapError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"nil error", nil, http.StatusOK, "ok"},
		{"invalid input", service.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
		{"not found", repository.ErrNotFound, http.StatusNotFound, "not_found"},
		{"already exists", repository.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"conflict", repository.ErrConflict, http.StatusConflict, "conflict"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "internal_error"},
		{"wrapped not found", fmt.Errorf("loading player: %w", repository.ErrNotFound), http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := response.MapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, payload.Error)
		})
	}
}

func TestMapError_ValidationCarriesFieldErrors(t *testing.T) {
	err := service.NewInvalidInputError([]service.FieldError{
		{Field: "first_name", Message: "must not be empty"},
		{Field: "jersey_number", Message: "must be between 0 and 999"},
	})

	status, payload := response.MapError(err)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid_input", payload.Error)
	require.Len(t, payload.FieldErrors, 2)
	assert.Equal(t, "first_name", payload.FieldErrors[0].Field)
}

func TestMapError_TypedNotFoundSurfacesMessage(t *testing.T) {
	status, payload := response.MapError(service.NewNotFound("Player", "id", int64(7)))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", payload.Error)
	assert.Equal(t, "Player not found with id: 7", payload.Message)
}

func TestMapError_BareNotFoundHasNoMessage(t *testing.T) {
	_, payload := response.MapError(repository.ErrNotFound)
	assert.Empty(t, payload.Message, "sentinel alone carries no resource context")
}

func TestMapError_InternalErrorsLeakNoDetail(t *testing.T) {
	_, payload := response.MapError(errors.New("pq: connection refused to 10.0.0.3"))
	assert.Equal(t, "internal_error", payload.Error)
	assert.Empty(t, payload.Message)
	assert.Empty(t, payload.FieldErrors)
}
