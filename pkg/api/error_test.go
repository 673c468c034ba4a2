package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawResponse(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	resp := &resty.Response{RawResponse: &http.Response{StatusCode: status}}
	resp.SetBody([]byte(body))
	return resp
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
		code   string
	}{
		{"message field", 400, `{"message":"Text is required"}`, "Text is required", ""},
		{"error field", 500, `{"error":"db down"}`, "db down", ""},
		{"code kept", 409, `{"message":"exists","code":"DUPLICATE"}`, "exists", "DUPLICATE"},
		{"plain text", 502, "bad gateway from proxy", "bad gateway from proxy", ""},
		{"empty body", 404, "", http.StatusText(404), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseError(rawResponse(t, tt.status, tt.body))

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.status, apiErr.HTTPStatus())
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	wrap := func(status int) error {
		return fmt.Errorf("doing a thing: %w", &APIError{StatusCode: status, Message: "x"})
	}

	assert.True(t, IsUnauthorized(wrap(401)))
	assert.True(t, IsForbidden(wrap(403)))
	assert.True(t, IsNotFound(wrap(404)))
	assert.True(t, IsServerError(wrap(503)))
	assert.False(t, IsServerError(wrap(404)))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestAPIErrorString(t *testing.T) {
	assert.Equal(t, "[404] Video not found", (&APIError{StatusCode: 404, Message: "Video not found"}).Error())
	assert.Equal(t, "[409] DUP: exists", (&APIError{StatusCode: 409, Code: "DUP", Message: "exists"}).Error())
}

func TestCheckResponse_PassesThroughTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	assert.Same(t, cause, CheckResponse(nil, cause))
}
