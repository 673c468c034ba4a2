package reels

import (
	"errors"
	"testing"

	"github.com/climbreels/cli/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVideos() []api.Video {
	return []api.Video{
		{ID: "v1", DifficultyLevel: "V2", Likes: []string{"other"}, LikesCount: 1},
		{ID: "v2", DifficultyLevel: "V4", Likes: []string{}},
	}
}

func TestLike_AddsThenRemoves(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()

	require.NoError(t, like(f, gw, 0, "me"))
	v, _ := f.Video(0)
	assert.Equal(t, []string{"other", "me"}, v.Likes)
	assert.Equal(t, 2, v.LikesCount)
	assert.True(t, f.IsLiked(0, "me"))

	require.NoError(t, like(f, gw, 0, "me"))
	v, _ = f.Video(0)
	assert.Equal(t, []string{"other"}, v.Likes)
	assert.Equal(t, 1, v.LikesCount)
	assert.Empty(t, f.Notice())
}

func TestLike_DoubleToggleRestores(t *testing.T) {
	original := sampleVideos()
	f := NewFeed(original)
	gw := newFakeGateway()

	for i := range original {
		require.NoError(t, like(f, gw, i, "me"))
		require.NoError(t, like(f, gw, i, "me"))
	}

	for i, v := range f.Videos() {
		assert.ElementsMatch(t, original[i].Likes, v.Likes)
		assert.Equal(t, len(original[i].Likes), LikeCount(v))
	}
}

func TestLike_FailureLeavesStateAndSetsNotice(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()
	gw.fail = true

	err := like(f, gw, 0, "me")

	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, sampleVideos(), f.Videos())
	assert.Equal(t, NoticeLikeFailed, f.Notice())

	f.DismissNotice()
	assert.Empty(t, f.Notice())
}

func TestLike_RequiresLogin(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()

	err := like(f, gw, 0, "")

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Equal(t, NoticeLoginToLike, f.Notice())
	assert.Empty(t, gw.calls)
}

func TestLike_BadIndex(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()

	assert.ErrorIs(t, like(f, gw, 5, "me"), ErrNoVideo)
	assert.Empty(t, gw.calls)
}

func TestSave(t *testing.T) {
	f := NewFeed(sampleVideos())
	f.SetSaved([]string{"old"})
	gw := newFakeGateway()
	gw.saved = []string{"old"}

	require.NoError(t, save(f, gw, 1, "me"))
	assert.Equal(t, []string{"old", "v2"}, f.Saved())
	assert.True(t, f.IsSaved("v2"))

	require.NoError(t, save(f, gw, 1, "me"))
	assert.False(t, f.IsSaved("v2"))
	assert.True(t, f.IsSaved("old"))
}

func TestSave_FailureAndLogin(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()

	assert.ErrorIs(t, save(f, gw, 0, ""), ErrLoginRequired)
	assert.Equal(t, NoticeLoginToSave, f.Notice())

	gw.fail = true
	assert.Error(t, save(f, gw, 0, "me"))
	assert.Equal(t, NoticeSaveFailed, f.Notice())
	assert.Empty(t, f.Saved())
}

func TestComment_AppendsServerComment(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()

	posted, err := comment(f, gw, 1, "me", "  great beta  ")

	require.NoError(t, err)
	assert.Equal(t, []string{"comment v2 great beta"}, gw.calls)
	v, _ := f.Video(1)
	require.Len(t, v.Comments, 1)
	assert.Equal(t, *posted, v.Comments[0])
	assert.Equal(t, "c-v2", v.Comments[0].ID)
}

func TestComment_BlankSendsNothing(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		f := NewFeed(sampleVideos())
		gw := newFakeGateway()

		_, err := comment(f, gw, 0, "me", text)

		assert.ErrorIs(t, err, ErrEmptyComment)
		assert.Empty(t, gw.calls)
		assert.Equal(t, sampleVideos(), f.Videos())
		assert.Empty(t, f.Notice())
	}
}

func TestComment_Failure(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()
	gw.fail = true

	_, err := comment(f, gw, 0, "me", "hi")

	assert.Error(t, err)
	assert.Equal(t, NoticeCommentFailed, f.Notice())
	v, _ := f.Video(0)
	assert.Empty(t, v.Comments)
}

func TestComment_RequiresLogin(t *testing.T) {
	f := NewFeed(sampleVideos())
	gw := newFakeGateway()

	_, err := comment(f, gw, 0, "", "hi")

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Equal(t, NoticeLoginToComment, f.Notice())
	assert.Empty(t, gw.calls)
}

func TestNewFeed_CopiesInput(t *testing.T) {
	videos := sampleVideos()
	f := NewFeed(videos)

	require.NoError(t, f.ApplyLike(1, "me"))

	assert.Empty(t, videos[1].Likes)
}

func TestReplaceClearsNotice(t *testing.T) {
	f := NewFeed(sampleVideos())
	f.SetNotice(NoticeLikeFailed)

	f.Replace(nil)

	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Notice())
}

func TestLikeCount(t *testing.T) {
	assert.Equal(t, 7, LikeCount(api.Video{LikesCount: 7, Likes: []string{"a"}}))
	assert.Equal(t, 2, LikeCount(api.Video{Likes: []string{"a", "b"}}))
	assert.Equal(t, 0, LikeCount(api.Video{}))
}

func TestLike_StaleAnswerIgnored(t *testing.T) {
	f := NewFeed(sampleVideos())

	videoID, err := f.BeginLike(0, "me")
	require.NoError(t, err)
	f.Replace(sampleVideos()[1:])

	err = f.ResolveLike(0, videoID, "me", nil)

	assert.ErrorIs(t, err, ErrStale)
	assert.Equal(t, sampleVideos()[1:], f.Videos())
}

func TestComment_StaleAnswerIgnored(t *testing.T) {
	f := NewFeed(sampleVideos())

	videoID, text, err := f.BeginComment(0, "me", " hi ")
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	f.Replace(sampleVideos()[1:])

	err = f.ResolveComment(0, videoID, &api.Comment{ID: "c1", Text: text}, nil)

	assert.ErrorIs(t, err, ErrStale)
	for _, v := range f.Videos() {
		assert.Empty(t, v.Comments)
	}
	assert.Empty(t, f.Notice())
}

func TestSave_AppliesAfterRefetch(t *testing.T) {
	f := NewFeed(sampleVideos())

	videoID, err := f.BeginSave(0, "me")
	require.NoError(t, err)
	f.Replace(nil)

	require.NoError(t, f.ResolveSave(videoID, &api.SaveResponse{SavedVideos: []api.Ref{"v1"}}, nil))
	assert.True(t, f.IsSaved("v1"))
}

func TestLike_FailureReportedForMovedVideo(t *testing.T) {
	f := NewFeed(sampleVideos())
	failure := errors.New("boom")

	assert.ErrorIs(t, f.ResolveLike(0, "gone", "me", failure), failure)
	assert.Equal(t, NoticeLikeFailed, f.Notice())
}

func TestApplyComment_DoesNotWriteThroughToInput(t *testing.T) {
	input := sampleVideos()
	input[0].Comments = make([]api.Comment, 1, 4)
	f := NewFeed(input)

	require.NoError(t, f.ApplyComment(0, api.Comment{ID: "new"}))

	assert.Len(t, input[0].Comments, 1)
	assert.Equal(t, api.Comment{}, input[0].Comments[:2][1])
}
