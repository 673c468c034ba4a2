package service

import (
	"context"
	"os"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/credentials"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/formatter"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/output"
)

type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// View prints the profile owned by userID, or by the logged-in user when
// userID is empty.
func (s *ProfileService) View(ctx context.Context, userID string) (*api.Profile, error) {
	if userID == "" {
		creds, err := requireSession("Please log in to view your profile.")
		if err != nil {
			return nil, err
		}
		userID = creds.UserID
	} else if _, err := loadSession(); err != nil {
		return nil, err
	}

	profile, err := api.GetUserProfile(ctx, userID)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, clierrors.NotFoundError("Profile", userID)
		}
		return nil, err
	}
	return profile, output.PrintRecord("Profile", profile, formatter.ProfileFields(profile))
}

// Create creates the logged-in user's profile and remembers its id.
func (s *ProfileService) Create(ctx context.Context, req api.ProfileRequest) (*api.Profile, error) {
	creds, err := requireSession("Please log in to create a profile.")
	if err != nil {
		return nil, err
	}
	req.UserID = creds.UserID

	profile, err := api.CreateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	creds.ProfileID = profile.ID
	if err := credentials.Save(creds); err != nil {
		logger.Warn("Failed to remember profile id", "err", err)
	}
	output.PrintSuccess("✓ Profile created")
	return profile, nil
}

// Edit updates the logged-in user's profile. Empty fields are left as
// they are.
func (s *ProfileService) Edit(ctx context.Context, req api.ProfileRequest) (*api.Profile, error) {
	creds, err := requireSession("Please log in to edit your profile.")
	if err != nil {
		return nil, err
	}

	profileID, err := s.profileID(ctx, creds)
	if err != nil {
		return nil, err
	}

	req.UserID = ""
	profile, err := api.UpdateProfile(ctx, profileID, req)
	if err != nil {
		return nil, err
	}
	output.PrintSuccess("✓ Profile updated")
	return profile, output.PrintRecord("Profile", profile, formatter.ProfileFields(profile))
}

// profileID returns the stored profile id, looking it up once if the
// session predates the profile.
func (s *ProfileService) profileID(ctx context.Context, creds *credentials.Credentials) (string, error) {
	if creds.ProfileID != "" {
		return creds.ProfileID, nil
	}
	profile, err := api.GetUserProfile(ctx, creds.UserID)
	if err != nil {
		if api.IsNotFound(err) {
			return "", clierrors.ValidationError("profile", "create a profile first with 'climbreels profile create'")
		}
		return "", err
	}
	creds.ProfileID = profile.ID
	if err := credentials.Save(creds); err != nil {
		logger.Warn("Failed to remember profile id", "err", err)
	}
	return profile.ID, nil
}

// Search prints profiles whose name matches query.
func (s *ProfileService) Search(ctx context.Context, query string) ([]api.Profile, error) {
	if query == "" {
		return nil, clierrors.ValidationError("query", "cannot be empty")
	}
	if _, err := loadSession(); err != nil {
		return nil, err
	}

	profiles, err := api.SearchProfiles(ctx, query)
	if err != nil {
		return nil, err
	}
	return profiles, output.PrintList("Profiles", profiles, formatter.ProfileHeaders, formatter.ProfileRows(profiles))
}

// Avatar uploads a profile picture for the logged-in user.
func (s *ProfileService) Avatar(ctx context.Context, imagePath string) (*api.ImageUploadResponse, error) {
	creds, err := requireSession("Please log in to change your picture.")
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(imagePath); err != nil {
		return nil, clierrors.FileNotFoundError(imagePath)
	}

	resp, err := api.UploadProfileImage(ctx, creds.UserID, imagePath)
	if err != nil {
		return nil, err
	}
	output.PrintSuccess("✓ %s", resp.Message)
	return resp, nil
}
