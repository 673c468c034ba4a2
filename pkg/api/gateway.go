package api

import "context"

// Gateway exposes the endpoint functions as methods so that callers can
// depend on a narrow interface instead of the package-level client.
type Gateway struct{}

// NewGateway returns a Gateway bound to the shared HTTP client.
func NewGateway() Gateway {
	return Gateway{}
}

func (Gateway) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return Login(ctx, email, password)
}

func (Gateway) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	return Register(ctx, name, email, password)
}

func (Gateway) GetGyms(ctx context.Context) ([]Gym, error) {
	return GetGyms(ctx)
}

func (Gateway) GetGymsWithVideos(ctx context.Context) ([]Gym, error) {
	return GetGymsWithVideos(ctx)
}

func (Gateway) GetAllVideos(ctx context.Context) ([]Video, error) {
	return GetAllVideos(ctx)
}

func (Gateway) GetVideosByGym(ctx context.Context, gymID string) ([]Video, error) {
	return GetVideosByGym(ctx, gymID)
}

func (Gateway) GetVideosByProfile(ctx context.Context, profileID string) ([]Video, error) {
	return GetVideosByProfile(ctx, profileID)
}

func (Gateway) GetVideosByPreferences(ctx context.Context, userID string) ([]Video, error) {
	return GetVideosByPreferences(ctx, userID)
}

func (Gateway) UploadVideo(ctx context.Context, req UploadVideoRequest) (*Video, error) {
	return UploadVideo(ctx, req)
}

func (Gateway) DeleteVideo(ctx context.Context, videoID string) (*MessageResponse, error) {
	return DeleteVideo(ctx, videoID)
}

func (Gateway) ToggleLike(ctx context.Context, videoID, userID string) (*LikeResponse, error) {
	return ToggleLike(ctx, videoID, userID)
}

func (Gateway) ToggleSave(ctx context.Context, videoID, userID string) (*SaveResponse, error) {
	return ToggleSave(ctx, videoID, userID)
}

func (Gateway) GetComments(ctx context.Context, videoID string) ([]Comment, error) {
	return GetComments(ctx, videoID)
}

func (Gateway) AddComment(ctx context.Context, videoID, text, userID string) (*Comment, error) {
	return AddComment(ctx, videoID, text, userID)
}

func (Gateway) FetchReels(ctx context.Context, concurrency int) ([]Video, error) {
	return FetchReels(ctx, concurrency)
}

func (Gateway) CreateProfile(ctx context.Context, req ProfileRequest) (*Profile, error) {
	return CreateProfile(ctx, req)
}

func (Gateway) GetUserProfile(ctx context.Context, userID string) (*Profile, error) {
	return GetUserProfile(ctx, userID)
}

func (Gateway) UpdateProfile(ctx context.Context, profileID string, req ProfileRequest) (*Profile, error) {
	return UpdateProfile(ctx, profileID, req)
}

func (Gateway) SearchProfiles(ctx context.Context, query string) ([]Profile, error) {
	return SearchProfiles(ctx, query)
}

func (Gateway) UploadProfileImage(ctx context.Context, userID, imagePath string) (*ImageUploadResponse, error) {
	return UploadProfileImage(ctx, userID, imagePath)
}
