package api

import (
	"context"
	"net/http"

	"github.com/climbreels/cli/pkg/logger"
)

// Login exchanges email and password for a session token
func Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	logger.Debug("Attempting login", "email", email)

	resp, err := send(newRequest(ctx).SetBody(LoginRequest{Email: email, Password: password}),
		http.MethodPost, "/auth/login", "logging in")
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := decode(resp, &authResp, "logging in"); err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "user_id", authResp.User.ID)
	return &authResp, nil
}

// Register creates a new account
func Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	logger.Debug("Registering account", "email", email)

	resp, err := send(newRequest(ctx).SetBody(RegisterRequest{Name: name, Email: email, Password: password}),
		http.MethodPost, "/auth/register", "registering")
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := decode(resp, &authResp, "registering"); err != nil {
		return nil, err
	}

	return &authResp, nil
}
