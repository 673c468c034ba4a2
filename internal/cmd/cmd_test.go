package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/climbreels/cli/internal/apitest"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/output"
	"github.com/climbreels/cli/pkg/reels"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree against srv with an isolated config dir
// and returns what it printed.
func run(t *testing.T, srv *apitest.Server, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CLIMBREELS_API_BASE_URL", srv.URL())
	t.Setenv("CLIMBREELS_LOG_FILE", filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() { _ = logger.Close() })

	color.NoColor = true
	out := &bytes.Buffer{}
	prev := output.Out
	output.Out = out
	t.Cleanup(func() { output.Out = prev })

	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	full := append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...)
	rootCmd.SetArgs(full)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newServer(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	return srv
}

func TestVersion(t *testing.T) {
	out, err := run(t, newServer(t), "version")

	require.NoError(t, err)
	assert.Contains(t, out, "ClimbReels CLI v"+Version)
}

func TestGymsList_UsesConfiguredBackend(t *testing.T) {
	srv := newServer(t)
	srv.AddGym("Boulder Barn", "Leeds")

	out, err := run(t, srv, "--output", "text", "gyms", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Boulder Barn")
	assert.Equal(t, 1, srv.Calls("GET", "/gyms"))
}

func TestVideosLike_RequiresLogin(t *testing.T) {
	srv := newServer(t)

	_, err := run(t, srv, "--output", "text", "videos", "like", "video-1")

	var cliErr *clierrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, clierrors.ErrorTypeAuth, cliErr.Type)
	assert.Equal(t, reels.NoticeLoginToLike, cliErr.Message)
	assert.Zero(t, srv.Calls("POST", "/videos/:id/like"))
}

func TestCommentsAdd_NeedsText(t *testing.T) {
	_, err := run(t, newServer(t), "--output", "text", "comments", "add", "video-1")

	assert.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, newServer(t), "--output", "yaml", "gyms", "list")

	var cliErr *clierrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, clierrors.ErrorTypeValidation, cliErr.Type)
}
