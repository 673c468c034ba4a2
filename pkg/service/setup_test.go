package service

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/climbreels/cli/internal/apitest"
	"github.com/climbreels/cli/pkg/client"
	"github.com/climbreels/cli/pkg/config"
	"github.com/climbreels/cli/pkg/credentials"
	"github.com/climbreels/cli/pkg/output"
	"github.com/climbreels/cli/pkg/prompter"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

type harness struct {
	srv *apitest.Server
	out *bytes.Buffer
}

// newHarness isolates config and credentials in a temp dir, starts a
// fake backend and captures output.
func newHarness(t *testing.T) *harness {
	t.Helper()
	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))

	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client.InitWithBaseURL(srv.URL())
	client.ClearAuthToken()

	color.NoColor = true
	out := &bytes.Buffer{}
	prev := output.Out
	output.Out = out
	t.Cleanup(func() { output.Out = prev })

	return &harness{srv: srv, out: out}
}

// login seeds a user with a profile and stores a session for them.
func (h *harness) login(t *testing.T, name string) (userID, profileID string) {
	t.Helper()
	userID, profileID = h.srv.AddUser(name, strings.ToLower(name)+"@example.com", "pw")
	require.NoError(t, credentials.Save(&credentials.Credentials{
		Token:     "token-" + userID,
		UserID:    userID,
		ProfileID: profileID,
		Name:      name,
	}))
	return userID, profileID
}

func answers(lines ...string) *prompter.Prompter {
	return prompter.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), io.Discard)
}

func bg() context.Context {
	return context.Background()
}
