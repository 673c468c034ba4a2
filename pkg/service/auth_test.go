package service

import (
	"testing"

	"github.com/climbreels/cli/pkg/client"
	"github.com/climbreels/cli/pkg/credentials"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginPromptsAndStoresSession(t *testing.T) {
	h := newHarness(t)
	userID, profileID := h.srv.AddUser("Alex", "alex@example.com", "free-solo")
	svc := NewAuthService(answers("alex@example.com", "free-solo"))

	creds, err := svc.Login(bg(), "", "")

	require.NoError(t, err)
	assert.Equal(t, userID, creds.UserID)
	assert.Equal(t, profileID, creds.ProfileID)
	assert.Equal(t, creds.Token, client.AuthToken())

	stored, err := credentials.Load()
	require.NoError(t, err)
	assert.Equal(t, creds.Token, stored.Token)
	assert.Contains(t, h.out.String(), "Logged in as Alex")
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	h := newHarness(t)
	h.srv.AddUser("Alex", "alex@example.com", "free-solo")

	_, err := NewAuthService(nil).Login(bg(), "alex@example.com", "nope")

	var cliErr *clierrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, clierrors.ErrorTypeAuth, cliErr.Type)

	stored, err := credentials.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAuthService_LoginEmptyEmail(t *testing.T) {
	newHarness(t)

	_, err := NewAuthService(answers("")).Login(bg(), "", "pw")

	var cliErr *clierrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, clierrors.ErrorTypeValidation, cliErr.Type)
	assert.Contains(t, cliErr.Message, "Email")
}

func TestAuthService_RegisterCreatesProfile(t *testing.T) {
	newHarness(t)

	creds, err := NewAuthService(nil).Register(bg(), "Janja", "janja@example.com", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, creds.UserID)
	assert.NotEmpty(t, creds.ProfileID)
}

func TestAuthService_Logout(t *testing.T) {
	h := newHarness(t)
	h.login(t, "Alex")
	client.SetAuthToken("token")

	require.NoError(t, NewAuthService(nil).Logout())

	stored, err := credentials.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Empty(t, client.AuthToken())

	require.NoError(t, NewAuthService(nil).Logout())
	assert.Contains(t, h.out.String(), "Not logged in")
}

func TestAuthService_WhoAmI(t *testing.T) {
	h := newHarness(t)

	assert.Error(t, NewAuthService(nil).WhoAmI())

	userID, _ := h.login(t, "Alex")
	require.NoError(t, NewAuthService(nil).WhoAmI())
	assert.Contains(t, h.out.String(), userID)
	assert.NotContains(t, h.out.String(), "token-")
}
