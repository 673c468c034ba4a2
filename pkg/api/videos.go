package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/climbreels/cli/pkg/logger"
)

func getVideos(ctx context.Context, path string, params map[string]string, action string) ([]Video, error) {
	resp, err := send(newRequest(ctx).SetPathParams(params), http.MethodGet, path, action)
	if err != nil {
		return nil, err
	}

	var videos []Video
	if err := decode(resp, &videos, action); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetAllVideos lists every video, newest first as ordered by the backend
func GetAllVideos(ctx context.Context) ([]Video, error) {
	logger.Debug("Fetching all videos")
	return getVideos(ctx, "/videos", nil, "fetching all videos")
}

// GetVideosByGym lists the videos recorded at a gym
func GetVideosByGym(ctx context.Context, gymID string) ([]Video, error) {
	logger.Debug("Fetching videos by gym", "gym_id", gymID)
	return getVideos(ctx, "/videos/gym/{gymId}", map[string]string{"gymId": gymID}, "fetching videos by gym")
}

// GetVideosByProfile lists the videos uploaded by a profile
func GetVideosByProfile(ctx context.Context, profileID string) ([]Video, error) {
	logger.Debug("Fetching videos by profile", "profile_id", profileID)
	return getVideos(ctx, "/videos/profile/{profileId}/videos", map[string]string{"profileId": profileID}, "fetching uploaded videos")
}

// GetVideosByPreferences lists videos matching a user's preferences
func GetVideosByPreferences(ctx context.Context, userID string) ([]Video, error) {
	logger.Debug("Fetching videos by preferences", "user_id", userID)
	return getVideos(ctx, "/videos/preferences/{userId}", map[string]string{"userId": userID}, "fetching videos by preferences")
}

// UploadVideo uploads a clip as multipart form data
func UploadVideo(ctx context.Context, req UploadVideoRequest) (*Video, error) {
	logger.Debug("Uploading video", "file_path", req.FilePath, "gym_id", req.GymID)

	file, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	form := map[string]string{
		"description":     req.Description,
		"difficultyLevel": req.DifficultyLevel,
		"gymId":           req.GymID,
		"profileId":       req.ProfileID,
	}

	resp, err := send(newRequest(ctx).
		SetFileReader("video", filepath.Base(req.FilePath), file).
		SetFormData(form),
		http.MethodPost, "/videos", "uploading video")
	if err != nil {
		return nil, err
	}

	var video Video
	if err := decode(resp, &video, "uploading video"); err != nil {
		return nil, err
	}

	logger.Debug("Video uploaded", "video_id", video.ID)
	return &video, nil
}

// DeleteVideo deletes a video
func DeleteVideo(ctx context.Context, videoID string) (*MessageResponse, error) {
	logger.Debug("Deleting video", "video_id", videoID)

	resp, err := send(newRequest(ctx).SetPathParam("videoId", videoID),
		http.MethodDelete, "/videos/{videoId}", "deleting video")
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decode(resp, &msg, "deleting video"); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ToggleLike likes the video for userID, or unlikes it if already liked
func ToggleLike(ctx context.Context, videoID, userID string) (*LikeResponse, error) {
	logger.Debug("Toggling like", "video_id", videoID, "user_id", userID)

	resp, err := send(newRequest(ctx).
		SetPathParam("videoId", videoID).
		SetBody(ToggleRequest{UserID: userID}),
		http.MethodPost, "/videos/{videoId}/like", "toggling like")
	if err != nil {
		return nil, err
	}

	var like LikeResponse
	if err := decode(resp, &like, "toggling like"); err != nil {
		return nil, err
	}
	return &like, nil
}

// ToggleSave saves the video for userID, or unsaves it if already saved
func ToggleSave(ctx context.Context, videoID, userID string) (*SaveResponse, error) {
	logger.Debug("Toggling save", "video_id", videoID, "user_id", userID)

	resp, err := send(newRequest(ctx).
		SetPathParam("videoId", videoID).
		SetBody(ToggleRequest{UserID: userID}),
		http.MethodPost, "/videos/{videoId}/save", "toggling save")
	if err != nil {
		return nil, err
	}

	var save SaveResponse
	if err := decode(resp, &save, "toggling save"); err != nil {
		return nil, err
	}
	return &save, nil
}
