package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/climbreels/cli/pkg/logger"
)

// CreateProfile creates the profile for an account
func CreateProfile(ctx context.Context, req ProfileRequest) (*Profile, error) {
	logger.Debug("Creating profile", "user_id", req.UserID)

	resp, err := send(newRequest(ctx).SetBody(req), http.MethodPost, "/profile", "creating profile")
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decode(resp, &profile, "creating profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile gets the profile owned by a user
func GetUserProfile(ctx context.Context, userID string) (*Profile, error) {
	logger.Debug("Fetching user profile", "user_id", userID)

	resp, err := send(newRequest(ctx).SetPathParam("userId", userID),
		http.MethodGet, "/profile/{userId}", "fetching user profile")
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decode(resp, &profile, "fetching user profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates a profile
func UpdateProfile(ctx context.Context, profileID string, req ProfileRequest) (*Profile, error) {
	logger.Debug("Updating profile", "profile_id", profileID)

	resp, err := send(newRequest(ctx).SetPathParam("profileId", profileID).SetBody(req),
		http.MethodPut, "/profile/{profileId}", "updating profile")
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decode(resp, &profile, "updating profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SearchProfiles searches profiles by name
func SearchProfiles(ctx context.Context, query string) ([]Profile, error) {
	logger.Debug("Searching profiles", "query", query)

	resp, err := send(newRequest(ctx).SetQueryParam("q", query),
		http.MethodGet, "/profile/search", "searching profiles")
	if err != nil {
		return nil, err
	}

	var profiles []Profile
	if err := decode(resp, &profiles, "searching profiles"); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UploadProfileImage uploads an avatar for a user as the "image" form field
func UploadProfileImage(ctx context.Context, userID, imagePath string) (*ImageUploadResponse, error) {
	logger.Debug("Uploading profile image", "user_id", userID, "file_path", imagePath)

	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	resp, err := send(newRequest(ctx).
		SetPathParam("userId", userID).
		SetFileReader("image", filepath.Base(imagePath), file),
		http.MethodPost, "/users/{userId}/upload-image", "uploading profile image")
	if err != nil {
		return nil, err
	}

	var result ImageUploadResponse
	if err := decode(resp, &result, "uploading profile image"); err != nil {
		return nil, err
	}
	return &result, nil
}
