package service

import (
	"context"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/logger"
)

// ViewerSession returns who is watching the reels and what they saved.
// Anonymous viewers get empty values; the viewer then asks them to log in
// when they interact.
func ViewerSession(ctx context.Context) (userID string, saved []string, err error) {
	creds, err := loadSession()
	if err != nil || creds == nil {
		return "", nil, err
	}

	profile, err := api.GetUserProfile(ctx, creds.UserID)
	if err != nil {
		if api.IsNotFound(err) {
			logger.Debug("Viewer has no profile yet", "user_id", creds.UserID)
			return creds.UserID, nil, nil
		}
		return "", nil, err
	}
	return creds.UserID, api.Refs(profile.SavedVideos), nil
}
