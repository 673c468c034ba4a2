package service

import (
	"net/http"
	"testing"

	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/reels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_List(t *testing.T) {
	h := newHarness(t)
	_, profileID := h.srv.AddUser("Alex", "alex@example.com", "pw")
	id := h.srv.AddVideo(h.srv.AddGym("A", ""), profileID, "V1", "")
	h.srv.AddComment(id, profileID, "drop knee!")

	comments, err := NewCommentService().List(bg(), id)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Contains(t, h.out.String(), "drop knee!")
	assert.Contains(t, h.out.String(), "Alex")
}

func TestCommentService_AddTrims(t *testing.T) {
	h := newHarness(t)
	_, profileID := h.login(t, "Alex")
	id := h.srv.AddVideo(h.srv.AddGym("A", ""), profileID, "V1", "")

	comment, err := NewCommentService().Add(bg(), id, "  nice send  ")

	require.NoError(t, err)
	assert.Equal(t, "nice send", comment.Text)
	assert.Equal(t, 1, h.srv.CommentCount(id))
}

func TestCommentService_AddBlankSendsNothing(t *testing.T) {
	h := newHarness(t)
	h.login(t, "Alex")

	_, err := NewCommentService().Add(bg(), "v", "   ")

	assert.Equal(t, clierrors.ErrorTypeValidation, errType(t, err))
	assert.Equal(t, 0, h.srv.Calls(http.MethodPost, "/videos/:id/comment"))
}

func TestCommentService_AddFailure(t *testing.T) {
	h := newHarness(t)
	_, profileID := h.login(t, "Alex")
	id := h.srv.AddVideo(h.srv.AddGym("A", ""), profileID, "V1", "")
	h.srv.Fail(http.MethodPost, "/videos/:id/comment", http.StatusInternalServerError)

	_, err := NewCommentService().Add(bg(), id, "hello")

	require.Error(t, err)
	assert.Equal(t, reels.NoticeCommentFailed, err.Error())
	assert.Equal(t, 0, h.srv.CommentCount(id))
}

func TestCommentService_AddRequiresLogin(t *testing.T) {
	newHarness(t)

	_, err := NewCommentService().Add(bg(), "v", "hello")

	require.Error(t, err)
	assert.Equal(t, reels.NoticeLoginToComment, err.Error())
}
