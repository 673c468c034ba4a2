package api

import (
	"bytes"
	"time"
)

// Ref is a document id that the backend sends either as a bare string or
// as a populated object carrying an "_id" field.
type Ref string

// UnmarshalJSON accepts "id", {"_id": "id"} and null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var doc struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		*r = Ref(doc.ID)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = Ref(s)
	return nil
}

// Refs converts a list of refs to plain ids.
func Refs(refs []Ref) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = string(r)
	}
	return ids
}

// Auth types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the authentication account.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// Profile is the user-facing identity record, distinct from the account.
type Profile struct {
	ID             string    `json:"_id"`
	User           *User     `json:"user,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Location       string    `json:"location,omitempty"`
	ClimbingLevel  string    `json:"climbingLevel,omitempty"`
	Preferences    []string  `json:"preferences,omitempty"`
	SavedVideos    []Ref     `json:"savedVideos,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// UnmarshalJSON accepts a populated profile or, when the backend did not
// populate it, a bare id.
func (p *Profile) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*p = Profile{ID: id}
		return nil
	}
	type profile Profile
	return json.Unmarshal(data, (*profile)(p))
}

// DisplayName returns the owning user's name, or a placeholder.
func (p *Profile) DisplayName() string {
	if p == nil || p.User == nil || p.User.Name == "" {
		return "Unknown User"
	}
	return p.User.Name
}

// ProfileRequest creates or updates a profile. Empty fields are omitted
// so an update only touches what was set.
type ProfileRequest struct {
	UserID         string   `json:"user,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Location       string   `json:"location,omitempty"`
	ClimbingLevel  string   `json:"climbingLevel,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Preferences    []string `json:"preferences,omitempty"`
}

// Gym types

type Gym struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Location string  `json:"location,omitempty"`
	Image    string  `json:"image,omitempty"`
	Videos   []Video `json:"videos,omitempty"`
}

// Video types

// Video is a reel: one short climbing clip.
type Video struct {
	ID              string    `json:"_id"`
	VideoURL        string    `json:"videoUrl"`
	Description     string    `json:"description,omitempty"`
	DifficultyLevel string    `json:"difficultyLevel,omitempty"`
	Likes           []string  `json:"likes"`
	LikesCount      int       `json:"likesCount,omitempty"`
	Comments        []Comment `json:"comments,omitempty"`
	Profile         *Profile  `json:"profile,omitempty"`
	Gym             Ref       `json:"gym,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// Comment is a single comment on a video.
type Comment struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	Profile   *Profile  `json:"profile,omitempty"`
	Video     Ref       `json:"video,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// UploadVideoRequest describes a multipart video upload.
type UploadVideoRequest struct {
	FilePath        string
	Description     string
	DifficultyLevel string
	GymID           string
	ProfileID       string
}

// ToggleRequest is the body of like and save toggles.
type ToggleRequest struct {
	UserID string `json:"userId"`
}

type LikeResponse struct {
	Message    string `json:"message"`
	LikesCount int    `json:"likesCount"`
}

type SaveResponse struct {
	Message     string `json:"message"`
	SavedVideos []Ref  `json:"savedVideos"`
}

type AddCommentRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

type ImageUploadResponse struct {
	Message string `json:"message"`
	Image   string `json:"image"`
	User    *User  `json:"user,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body shape the backend uses.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}
