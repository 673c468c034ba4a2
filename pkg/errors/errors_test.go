package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr struct{ status int }

func (e *statusErr) Error() string   { return fmt.Sprintf("[%d] request failed", e.status) }
func (e *statusErr) HTTPStatus() int { return e.status }

func TestNewCLIError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test error", cause)

	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "Test error", err.Message)
	assert.Same(t, cause, err.Cause)
	assert.ErrorIs(t, err, cause)
}

func TestWithSuggestion(t *testing.T) {
	err := NewCLIError(ErrorTypeValidation, "Test", nil)

	result := err.WithSuggestion("Try something else")

	assert.True(t, result.HasSuggestion())
	assert.Equal(t, "Try something else", result.Suggestion)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *CLIError
		typ  ErrorType
		hint string
	}{
		{"network", NetworkError("Connection failed"), ErrorTypeNetwork, "internet"},
		{"timeout", TimeoutError(), ErrorTypeTimeout, "too long"},
		{"auth", AuthError("Invalid credentials"), ErrorTypeAuth, "auth login"},
		{"session", SessionExpiredError(), ErrorTypeSessionExpired, "auth login"},
		{"unauthorized", UnauthorizedError(), ErrorTypeUnauthorized, "auth login"},
		{"forbidden", ForbiddenError(), ErrorTypeForbidden, "belong to you"},
		{"file", FileNotFoundError("/tmp/send.mp4"), ErrorTypeFileNotFound, "file path"},
		{"format", VideoFormatError("avi"), ErrorTypeVideoFormat, "mp4"},
		{"size", FileSizeError(150.5, 100), ErrorTypeFileSize, "100 MB"},
		{"server", ServerError(), ErrorTypeServer, "few moments"},
		{"conflict", ConflictError("Email already registered"), ErrorTypeConflict, "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Contains(t, tt.err.Suggestion, tt.hint)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("email", "invalid format")

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Contains(t, err.Message, "email")
	assert.Contains(t, err.Message, "invalid format")
}

func TestFileSizeErrorMessage(t *testing.T) {
	err := FileSizeError(150.5, 100)

	assert.Contains(t, err.Message, "150.5")
	assert.Contains(t, err.Message, "100")
}

func TestCategorizeError_Nil(t *testing.T) {
	assert.Nil(t, CategorizeError(nil))
}

func TestCategorizeError_KeepsCLIError(t *testing.T) {
	original := NotFoundError("Video", "v1")
	wrapped := fmt.Errorf("loading video: %w", original)

	assert.Same(t, original, CategorizeError(wrapped))
}

func TestCategorizeError_ByStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{http.StatusUnauthorized, ErrorTypeUnauthorized},
		{http.StatusForbidden, ErrorTypeForbidden},
		{http.StatusNotFound, ErrorTypeNotFound},
		{http.StatusConflict, ErrorTypeConflict},
		{http.StatusBadRequest, ErrorTypeValidation},
		{http.StatusInternalServerError, ErrorTypeServer},
		{http.StatusBadGateway, ErrorTypeServer},
		{http.StatusTeapot, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			src := &statusErr{status: tt.status}
			got := CategorizeError(fmt.Errorf("toggle like: %w", src))

			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.ErrorIs(t, got, src)
		})
	}
}

func TestCategorizeError_Timeouts(t *testing.T) {
	assert.Equal(t, ErrorTypeTimeout, CategorizeError(context.DeadlineExceeded).Type)
	assert.Equal(t, ErrorTypeTimeout, CategorizeError(errors.New("i/o timeout")).Type)
}

func TestCategorizeError_ConnectionRefused(t *testing.T) {
	err := errors.New("Get \"http://localhost:5000/api/gyms\": dial tcp [::1]:5000: connect: connection refused")

	got := CategorizeError(err)

	assert.Equal(t, ErrorTypeNetwork, got.Type)
	assert.True(t, got.HasSuggestion())
}

func TestCategorizeError_Unknown(t *testing.T) {
	got := CategorizeError(errors.New("something odd"))

	assert.Equal(t, ErrorTypeUnknown, got.Type)
	assert.Equal(t, "something odd", got.Message)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))

	out := FormatError(UnauthorizedError())
	assert.True(t, strings.HasPrefix(out, "Error (unauthorized): "))
	assert.Contains(t, out, "Suggestion: ")

	plain := FormatError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", plain)
}
