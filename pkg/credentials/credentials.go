package credentials

import (
	"os"
	"time"

	"github.com/climbreels/cli/pkg/config"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Credentials is the locally persisted session: the backend token plus
// the identifiers every user-scoped request needs.
type Credentials struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ProfileID string    `json:"profile_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	SavedAt   time.Time `json:"saved_at"`
	// ExpiresAt is zero when the backend did not report an expiry.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Load loads credentials from disk. It returns nil, nil when no session
// has been saved yet.
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk, readable by the owner only.
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	if creds.SavedAt.IsZero() {
		creds.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Delete deletes credentials from disk. Deleting a missing file is not
// an error.
func Delete() error {
	err := os.Remove(config.GetCredentialsPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// IsExpired checks if the token is past its known expiry
func (c *Credentials) IsExpired() bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(c.ExpiresAt)
}

// IsValid checks if credentials are usable for user-scoped requests
func (c *Credentials) IsValid() bool {
	return c.Token != "" && c.UserID != "" && !c.IsExpired()
}
