// Package reels holds the interaction state of the reels feed: the videos
// as currently rendered, the viewer's saved set and a dismissable notice.
//
// Every mutation follows the server: a like, save or comment changes the
// local copy only after the backend has acknowledged it.
package reels

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/logger"
)

// User-facing notices.
const (
	NoticeLoginToLike    = "Please log in to like videos."
	NoticeLoginToSave    = "Please log in to save videos."
	NoticeLoginToComment = "Please log in to comment on videos."
	NoticeLikeFailed     = "Failed to toggle like."
	NoticeSaveFailed     = "Failed to save video."
	NoticeCommentFailed  = "Failed to add comment."
	NoticeLoadFailed     = "Failed to load Reels videos."
)

var (
	// ErrLoginRequired is returned when an action needs a user id.
	ErrLoginRequired = errors.New("login required")
	// ErrEmptyComment is returned for blank comment text.
	ErrEmptyComment = errors.New("comment text is empty")
	// ErrNoVideo is returned for an index outside the feed.
	ErrNoVideo = errors.New("no video at index")
	// ErrStale is returned when an answer arrives for a video that is no
	// longer where the request found it.
	ErrStale = errors.New("video no longer in feed position")
)

// Gateway is the subset of the backend behind the feed's interactions.
type Gateway interface {
	ToggleLike(ctx context.Context, videoID, userID string) (*api.LikeResponse, error)
	ToggleSave(ctx context.Context, videoID, userID string) (*api.SaveResponse, error)
	AddComment(ctx context.Context, videoID, text, userID string) (*api.Comment, error)
}

// Feed is the local, non-authoritative copy of the reels list. It is not
// safe for concurrent use; the owner (a command or the viewer's Update
// loop) serializes access.
type Feed struct {
	videos []api.Video
	saved  []string
	notice string
}

// NewFeed wraps videos. The slice is copied.
func NewFeed(videos []api.Video) *Feed {
	return &Feed{videos: slices.Clone(videos)}
}

// Len returns the number of videos.
func (f *Feed) Len() int {
	return len(f.videos)
}

// Videos returns the videos in feed order.
func (f *Feed) Videos() []api.Video {
	return f.videos
}

// Video returns the video at index.
func (f *Feed) Video(index int) (*api.Video, error) {
	if index < 0 || index >= len(f.videos) {
		return nil, fmt.Errorf("%w %d", ErrNoVideo, index)
	}
	return &f.videos[index], nil
}

// Replace swaps in a freshly fetched list and clears the notice.
func (f *Feed) Replace(videos []api.Video) {
	f.videos = slices.Clone(videos)
	f.notice = ""
}

// Notice returns the current user-facing message, if any.
func (f *Feed) Notice() string {
	return f.notice
}

// SetNotice replaces the current message.
func (f *Feed) SetNotice(msg string) {
	f.notice = msg
}

// DismissNotice clears the message.
func (f *Feed) DismissNotice() {
	f.notice = ""
}

// SetSaved seeds the viewer's saved set, usually from their profile.
func (f *Feed) SetSaved(videoIDs []string) {
	f.saved = slices.Clone(videoIDs)
}

// Saved returns the saved video ids.
func (f *Feed) Saved() []string {
	return f.saved
}

// IsSaved reports whether videoID is in the saved set.
func (f *Feed) IsSaved(videoID string) bool {
	return slices.Contains(f.saved, videoID)
}

// IsLiked reports whether userID likes the video at index.
func (f *Feed) IsLiked(index int, userID string) bool {
	v, err := f.Video(index)
	if err != nil || userID == "" {
		return false
	}
	return slices.Contains(v.Likes, userID)
}

// LikeCount prefers the server count and falls back to the like list.
func LikeCount(v api.Video) int {
	if v.LikesCount > 0 {
		return v.LikesCount
	}
	return len(v.Likes)
}

// RequireUser sets notice and returns ErrLoginRequired when userID is
// empty.
func (f *Feed) RequireUser(userID, notice string) error {
	if userID == "" {
		f.notice = notice
		return ErrLoginRequired
	}
	return nil
}

// ApplyLike flips userID's membership in the like list of the video at
// index and recomputes the count. Call it after the server acknowledged.
func (f *Feed) ApplyLike(index int, userID string) error {
	v, err := f.Video(index)
	if err != nil {
		return err
	}
	if i := slices.Index(v.Likes, userID); i >= 0 {
		v.Likes = slices.Delete(slices.Clone(v.Likes), i, i+1)
	} else {
		v.Likes = append(slices.Clone(v.Likes), userID)
	}
	v.LikesCount = len(v.Likes)
	return nil
}

// ApplySave replaces the saved set with the one the server returned.
func (f *Feed) ApplySave(savedVideos []api.Ref) {
	f.saved = api.Refs(savedVideos)
}

// ApplyComment appends comment, as returned by the server, to the video
// at index.
func (f *Feed) ApplyComment(index int, comment api.Comment) error {
	v, err := f.Video(index)
	if err != nil {
		return err
	}
	v.Comments = append(slices.Clone(v.Comments), comment)
	return nil
}

// Interactions run in two steps so the request can happen off the
// owner's goroutine. Begin* checks the login and returns what to send;
// Resolve* takes the server's answer and updates the feed. Nothing
// changes between the two.

// target returns the id of the video at index for a user action.
func (f *Feed) target(index int, userID, notice string) (string, error) {
	if err := f.RequireUser(userID, notice); err != nil {
		return "", err
	}
	v, err := f.Video(index)
	if err != nil {
		return "", err
	}
	return v.ID, nil
}

// current reports whether videoID is still at index. A refetch between
// request and answer moves or drops it.
func (f *Feed) current(index int, videoID string) error {
	v, err := f.Video(index)
	if err != nil || v.ID != videoID {
		return fmt.Errorf("%w: %s", ErrStale, videoID)
	}
	return nil
}

// BeginLike returns the id of the video to toggle the like on.
func (f *Feed) BeginLike(index int, userID string) (string, error) {
	return f.target(index, userID, NoticeLoginToLike)
}

// ResolveLike applies the answer to a like toggle on videoID. On failure
// it sets the notice and leaves the likes as they were.
func (f *Feed) ResolveLike(index int, videoID, userID string, err error) error {
	if err != nil {
		logger.Error("Error toggling like", "video_id", videoID, "err", err)
		f.notice = NoticeLikeFailed
		return err
	}
	if err := f.current(index, videoID); err != nil {
		return err
	}
	return f.ApplyLike(index, userID)
}

// BeginSave returns the id of the video to toggle the save on.
func (f *Feed) BeginSave(index int, userID string) (string, error) {
	return f.target(index, userID, NoticeLoginToSave)
}

// ResolveSave adopts the saved set the server returned. The set belongs
// to the user, not to one video, so it applies even after a refetch.
func (f *Feed) ResolveSave(videoID string, resp *api.SaveResponse, err error) error {
	if err != nil {
		logger.Error("Error saving video", "video_id", videoID, "err", err)
		f.notice = NoticeSaveFailed
		return err
	}
	f.ApplySave(resp.SavedVideos)
	return nil
}

// TrimComment normalizes comment text, rejecting blank input.
func TrimComment(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyComment
	}
	return text, nil
}

// BeginComment returns the video id and trimmed text to post. Blank text
// is rejected before the login check, so it never produces a notice.
func (f *Feed) BeginComment(index int, userID, text string) (videoID, trimmed string, err error) {
	trimmed, err = TrimComment(text)
	if err != nil {
		return "", "", err
	}
	videoID, err = f.target(index, userID, NoticeLoginToComment)
	if err != nil {
		return "", "", err
	}
	return videoID, trimmed, nil
}

// ResolveComment appends the comment the server stored.
func (f *Feed) ResolveComment(index int, videoID string, comment *api.Comment, err error) error {
	if err != nil {
		logger.Error("Error adding comment", "video_id", videoID, "err", err)
		f.notice = NoticeCommentFailed
		return err
	}
	if err := f.current(index, videoID); err != nil {
		return err
	}
	return f.ApplyComment(index, *comment)
}
