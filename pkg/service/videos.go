package service

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/climbreels/cli/pkg/api"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/formatter"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/output"
	"github.com/climbreels/cli/pkg/prompter"
	"github.com/climbreels/cli/pkg/reels"
)

// MaxUploadMB is the largest clip the upload command accepts.
const MaxUploadMB = 100

// VideoFormats are the accepted upload extensions.
var VideoFormats = []string{"mp4", "mov", "webm", "m4v"}

type VideoService struct {
	prompt *prompter.Prompter
}

// NewVideoService creates a new video service
func NewVideoService(p *prompter.Prompter) *VideoService {
	return &VideoService{prompt: orStd(p)}
}

// ListOptions selects which videos List fetches. At most one of the
// fields is used, in field order; none lists everything.
type ListOptions struct {
	GymID     string
	ProfileID string
	ForMe     bool
}

// List prints videos.
func (s *VideoService) List(ctx context.Context, opts ListOptions) ([]api.Video, error) {
	creds, err := loadSession()
	if err != nil {
		return nil, err
	}

	var videos []api.Video
	switch {
	case opts.GymID != "":
		videos, err = api.GetVideosByGym(ctx, opts.GymID)
	case opts.ProfileID != "":
		videos, err = api.GetVideosByProfile(ctx, opts.ProfileID)
	case opts.ForMe:
		if creds == nil {
			return nil, clierrors.AuthError("Please log in to see videos for you.")
		}
		videos, err = api.GetVideosByPreferences(ctx, creds.UserID)
	default:
		videos, err = api.GetAllVideos(ctx)
	}
	if err != nil {
		return nil, err
	}

	return videos, output.PrintList("Videos", videos, formatter.VideoHeaders, formatter.VideoRows(videos))
}

// UploadOptions describes a clip to upload.
type UploadOptions struct {
	Path        string
	GymID       string
	Grade       string
	Description string
}

// ValidateVideoFile checks that path exists, has a supported extension
// and fits the upload limit.
func ValidateVideoFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return clierrors.FileNotFoundError(path)
		}
		return err
	}
	if info.IsDir() {
		return clierrors.ValidationError("file", path+" is a directory")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !slices.Contains(VideoFormats, ext) {
		return clierrors.VideoFormatError(ext)
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	if sizeMB > MaxUploadMB {
		return clierrors.FileSizeError(sizeMB, MaxUploadMB)
	}
	return nil
}

// Upload validates and uploads a clip as the logged-in user's profile.
func (s *VideoService) Upload(ctx context.Context, opts UploadOptions) (*api.Video, error) {
	creds, err := requireSession("Please log in to upload videos.")
	if err != nil {
		return nil, err
	}
	if creds.ProfileID == "" {
		return nil, clierrors.ValidationError("profile", "create a profile first with 'climbreels profile create'")
	}
	if err := ValidateVideoFile(opts.Path); err != nil {
		return nil, err
	}
	if opts.GymID == "" {
		return nil, clierrors.ValidationError("gym", "required")
	}

	output.PrintInfo("Uploading %s...", filepath.Base(opts.Path))
	video, err := api.UploadVideo(ctx, api.UploadVideoRequest{
		FilePath:        opts.Path,
		Description:     opts.Description,
		DifficultyLevel: opts.Grade,
		GymID:           opts.GymID,
		ProfileID:       creds.ProfileID,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Video uploaded", "video_id", video.ID)
	output.PrintSuccess("✓ Uploaded video %s", video.ID)
	return video, output.PrintRecord("", video, formatter.VideoFields(video))
}

// Delete removes a video after confirmation. yes skips the prompt.
func (s *VideoService) Delete(ctx context.Context, videoID string, yes bool) (bool, error) {
	if _, err := requireSession("Please log in to delete videos."); err != nil {
		return false, err
	}

	if !yes {
		ok, err := s.prompt.Confirm("Delete video " + videoID + "?")
		if err != nil {
			return false, err
		}
		if !ok {
			output.PrintInfo("Cancelled")
			return false, nil
		}
	}

	resp, err := api.DeleteVideo(ctx, videoID)
	if err != nil {
		return false, err
	}
	output.PrintSuccess("✓ %s", resp.Message)
	return true, nil
}

// Like toggles the logged-in user's like on a video.
func (s *VideoService) Like(ctx context.Context, videoID string) (*api.LikeResponse, error) {
	creds, err := requireSession(reels.NoticeLoginToLike)
	if err != nil {
		return nil, err
	}

	resp, err := api.ToggleLike(ctx, videoID, creds.UserID)
	if err != nil {
		return nil, clierrors.NewCLIError(clierrors.ErrorTypeUnknown, reels.NoticeLikeFailed, err)
	}
	output.PrintSuccess("✓ %s (%d likes)", resp.Message, resp.LikesCount)
	return resp, nil
}

// Save toggles a video in the logged-in user's saved list.
func (s *VideoService) Save(ctx context.Context, videoID string) (*api.SaveResponse, error) {
	creds, err := requireSession(reels.NoticeLoginToSave)
	if err != nil {
		return nil, err
	}

	resp, err := api.ToggleSave(ctx, videoID, creds.UserID)
	if err != nil {
		return nil, clierrors.NewCLIError(clierrors.ErrorTypeUnknown, reels.NoticeSaveFailed, err)
	}
	output.PrintSuccess("✓ %s (%d saved)", resp.Message, len(resp.SavedVideos))
	return resp, nil
}
