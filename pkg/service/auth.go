package service

import (
	"context"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/client"
	"github.com/climbreels/cli/pkg/credentials"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/output"
	"github.com/climbreels/cli/pkg/prompter"
)

type AuthService struct {
	prompt *prompter.Prompter
}

// NewAuthService creates a new auth service. A nil prompter reads from
// the terminal.
func NewAuthService(p *prompter.Prompter) *AuthService {
	return &AuthService{prompt: orStd(p)}
}

func (s *AuthService) askMissing(field string, value *string, secret bool) error {
	if *value != "" {
		return nil
	}
	label := field + ": "
	var err error
	if secret {
		*value, err = s.prompt.Password(label)
	} else {
		*value, err = s.prompt.String(label)
	}
	if err != nil {
		return err
	}
	if *value == "" {
		return clierrors.ValidationError(field, "cannot be empty")
	}
	return nil
}

// Login exchanges credentials for a session and stores it. Missing email
// or password are prompted for.
func (s *AuthService) Login(ctx context.Context, email, password string) (*credentials.Credentials, error) {
	if err := s.askMissing("Email", &email, false); err != nil {
		return nil, err
	}
	if err := s.askMissing("Password", &password, true); err != nil {
		return nil, err
	}

	resp, err := api.Login(ctx, email, password)
	if err != nil {
		if api.IsUnauthorized(err) || api.IsNotFound(err) {
			return nil, clierrors.AuthError("Invalid email or password")
		}
		return nil, err
	}

	return s.store(ctx, resp)
}

// Register creates an account and an empty profile for it, then stores
// the session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*credentials.Credentials, error) {
	if err := s.askMissing("Name", &name, false); err != nil {
		return nil, err
	}
	if err := s.askMissing("Email", &email, false); err != nil {
		return nil, err
	}
	if err := s.askMissing("Password", &password, true); err != nil {
		return nil, err
	}

	resp, err := api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	client.SetAuthToken(resp.Token)
	if _, err := api.CreateProfile(ctx, api.ProfileRequest{UserID: resp.User.ID}); err != nil {
		// The account exists either way; profile create can be retried.
		logger.Warn("Profile creation after register failed", "user_id", resp.User.ID, "err", err)
		output.PrintWarning("Account created but profile setup failed; run 'climbreels profile create'.")
	}

	return s.store(ctx, resp)
}

func (s *AuthService) store(ctx context.Context, resp *api.AuthResponse) (*credentials.Credentials, error) {
	client.SetAuthToken(resp.Token)

	creds := &credentials.Credentials{
		Token:  resp.Token,
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Email:  resp.User.Email,
	}

	profile, err := api.GetUserProfile(ctx, resp.User.ID)
	switch {
	case err == nil:
		creds.ProfileID = profile.ID
	case api.IsNotFound(err):
		logger.Debug("No profile yet", "user_id", resp.User.ID)
	default:
		return nil, err
	}

	if err := credentials.Save(creds); err != nil {
		logger.Error("Failed to save credentials", "err", err)
		return nil, err
	}

	output.PrintSuccess("✓ Logged in as %s", creds.Name)
	return creds, nil
}

// Logout forgets the stored session.
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if creds == nil {
		output.PrintWarning("Not logged in")
		return nil
	}

	if err := credentials.Delete(); err != nil {
		return err
	}
	client.ClearAuthToken()
	output.PrintSuccess("✓ Logged out")
	return nil
}

// WhoAmI prints the stored session.
func (s *AuthService) WhoAmI() error {
	creds, err := loadSession()
	if err != nil {
		return err
	}
	if creds == nil {
		return clierrors.AuthError("Not logged in")
	}

	profileID := creds.ProfileID
	if profileID == "" {
		profileID = "-"
	}
	raw := map[string]string{
		"userId":    creds.UserID,
		"profileId": creds.ProfileID,
		"name":      creds.Name,
		"email":     creds.Email,
	}
	return output.PrintRecord("Current user", raw, []output.Field{
		{Key: "Name", Value: creds.Name},
		{Key: "Email", Value: creds.Email},
		{Key: "User ID", Value: creds.UserID},
		{Key: "Profile ID", Value: profileID},
		{Key: "Logged in", Value: creds.SavedAt.Format("2006-01-02 15:04")},
	})
}
