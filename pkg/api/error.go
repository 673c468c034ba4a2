package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/climbreels/cli/pkg/client"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError represents a non-2xx response from the backend
type APIError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// HTTPStatus reports the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// ParseError builds an APIError from an error response
func ParseError(resp *resty.Response) error {
	statusCode := resp.StatusCode()

	var errResp ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		if msg != "" {
			return &APIError{Code: errResp.Code, Message: msg, StatusCode: statusCode}
		}
	}

	msg := strings.TrimSpace(string(resp.Body()))
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &APIError{Message: msg, StatusCode: statusCode}
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized checks if error is due to missing/invalid authentication
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if error is due to insufficient permissions
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsNotFound checks if error is due to resource not found
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsServerError checks if error is due to server error (5xx)
func IsServerError(err error) bool {
	return statusOf(err) >= 500
}

// CheckResponse checks if response is successful and returns error if not
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return ParseError(resp)
	}

	return nil
}

// newRequest starts a request on the shared client bound to ctx.
func newRequest(ctx context.Context) *resty.Request {
	return client.GetClient().R().SetContext(ctx)
}

// send executes req and applies the gateway's uniform failure handling:
// log the detail for developers, then hand the error back to the caller.
func send(req *resty.Request, method, path, action string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err := CheckResponse(resp, err); err != nil {
		logger.Error("Error "+action, "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return resp, nil
}

// decode unmarshals a successful response body into target.
func decode(resp *resty.Response, target interface{}, action string) error {
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		logger.Error("Error decoding response", "action", action, "err", err)
		return fmt.Errorf("%s: decoding response: %w", action, err)
	}
	return nil
}
