package api

import (
	"context"
	"testing"

	"github.com/climbreels/cli/internal/apitest"
	"github.com/climbreels/cli/pkg/client"
)

// newBackend starts a fake backend and points the shared client at it.
func newBackend(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	client.InitWithBaseURL(srv.URL())
	return srv
}

func bg() context.Context {
	return context.Background()
}
