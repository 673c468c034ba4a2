package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReels_JoinsComments(t *testing.T) {
	srv := newBackend(t)
	_, profileID := srv.AddUser("Alex", "alex@example.com", "pw")
	gym := srv.AddGym("A", "")
	first := srv.AddVideo(gym, profileID, "V1", "one")
	srv.AddVideo(gym, profileID, "V2", "two")
	third := srv.AddVideo(gym, profileID, "V3", "three")
	srv.AddComment(first, profileID, "a")
	srv.AddComment(third, profileID, "b")
	srv.AddComment(third, profileID, "c")

	for _, limit := range []int{0, 1, 8} {
		videos, err := FetchReels(bg(), limit)
		require.NoError(t, err)
		require.Len(t, videos, 3)

		assert.Len(t, videos[0].Comments, 1, "limit %d", limit)
		assert.Empty(t, videos[1].Comments, "limit %d", limit)
		assert.Len(t, videos[2].Comments, 2, "limit %d", limit)
		assert.Equal(t, "three", videos[2].Description)
	}
}

func TestFetchReels_CommentFailureFailsWholeFetch(t *testing.T) {
	srv := newBackend(t)
	_, profileID := srv.AddUser("Alex", "alex@example.com", "pw")
	srv.AddVideo(srv.AddGym("A", ""), profileID, "V1", "")
	srv.Fail(http.MethodGet, "/videos/:id/comments", http.StatusInternalServerError)

	videos, err := FetchReels(bg(), 4)

	require.Error(t, err)
	assert.Nil(t, videos)
}

func TestFetchReels_ListFailure(t *testing.T) {
	srv := newBackend(t)
	srv.Fail(http.MethodGet, "/videos", http.StatusServiceUnavailable)

	_, err := FetchReels(bg(), 4)

	require.Error(t, err)
	assert.Equal(t, 0, srv.Calls(http.MethodGet, "/videos/:id/comments"))
}

func TestFetchReels_Empty(t *testing.T) {
	newBackend(t)

	videos, err := FetchReels(bg(), 4)

	require.NoError(t, err)
	assert.Empty(t, videos)
}
