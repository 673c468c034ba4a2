package reels

import (
	"context"
	"errors"
	"slices"

	"github.com/climbreels/cli/pkg/api"
)

var errBackend = errors.New("backend unavailable")

// fakeGateway behaves like the backend's toggle endpoints and records
// every call.
type fakeGateway struct {
	fail  bool
	likes map[string][]string
	saved []string
	calls []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{likes: map[string][]string{}}
}

func (g *fakeGateway) ToggleLike(_ context.Context, videoID, userID string) (*api.LikeResponse, error) {
	g.calls = append(g.calls, "like "+videoID)
	if g.fail {
		return nil, errBackend
	}
	likes := g.likes[videoID]
	if i := slices.Index(likes, userID); i >= 0 {
		likes = slices.Delete(likes, i, i+1)
	} else {
		likes = append(likes, userID)
	}
	g.likes[videoID] = likes
	return &api.LikeResponse{Message: "ok", LikesCount: len(likes)}, nil
}

func (g *fakeGateway) ToggleSave(_ context.Context, videoID, userID string) (*api.SaveResponse, error) {
	g.calls = append(g.calls, "save "+videoID)
	if g.fail {
		return nil, errBackend
	}
	if i := slices.Index(g.saved, videoID); i >= 0 {
		g.saved = slices.Delete(g.saved, i, i+1)
	} else {
		g.saved = append(g.saved, videoID)
	}
	refs := make([]api.Ref, len(g.saved))
	for i, id := range g.saved {
		refs[i] = api.Ref(id)
	}
	return &api.SaveResponse{Message: "ok", SavedVideos: refs}, nil
}

func (g *fakeGateway) AddComment(_ context.Context, videoID, text, userID string) (*api.Comment, error) {
	g.calls = append(g.calls, "comment "+videoID+" "+text)
	if g.fail {
		return nil, errBackend
	}
	return &api.Comment{
		ID:      "c-" + videoID,
		Text:    text,
		Video:   api.Ref(videoID),
		Profile: &api.Profile{ID: "p-" + userID, User: &api.User{ID: userID, Name: "Climber"}},
	}, nil
}

// like, save and comment run an interaction the way the viewer does:
// begin, send the request, resolve with the answer.

func like(f *Feed, gw *fakeGateway, index int, userID string) error {
	videoID, err := f.BeginLike(index, userID)
	if err != nil {
		return err
	}
	_, err = gw.ToggleLike(context.Background(), videoID, userID)
	return f.ResolveLike(index, videoID, userID, err)
}

func save(f *Feed, gw *fakeGateway, index int, userID string) error {
	videoID, err := f.BeginSave(index, userID)
	if err != nil {
		return err
	}
	resp, err := gw.ToggleSave(context.Background(), videoID, userID)
	return f.ResolveSave(videoID, resp, err)
}

func comment(f *Feed, gw *fakeGateway, index int, userID, text string) (*api.Comment, error) {
	videoID, text, err := f.BeginComment(index, userID, text)
	if err != nil {
		return nil, err
	}
	c, err := gw.AddComment(context.Background(), videoID, text, userID)
	if err := f.ResolveComment(index, videoID, c, err); err != nil {
		return nil, err
	}
	return c, nil
}
