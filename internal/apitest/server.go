// Package apitest runs an in-memory ClimbReels backend for tests. It
// implements the REST surface the client consumes, keeps state in maps
// guarded by one mutex, and lets a test force any route to fail.
package apitest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// User is an account as the backend stores it.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
	password string
}

// Profile is a stored profile.
type Profile struct {
	ID            string   `json:"_id"`
	UserID        string   `json:"-"`
	Bio           string   `json:"bio,omitempty"`
	Location      string   `json:"location,omitempty"`
	ClimbingLevel string   `json:"climbingLevel,omitempty"`
	Preferences   []string `json:"preferences,omitempty"`
	SavedVideos   []string `json:"savedVideos"`
}

// Gym is a stored gym.
type Gym struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// Video is a stored video. Comments live in their own table.
type Video struct {
	ID              string    `json:"_id"`
	VideoURL        string    `json:"videoUrl"`
	Description     string    `json:"description"`
	DifficultyLevel string    `json:"difficultyLevel"`
	Likes           []string  `json:"likes"`
	GymID           string    `json:"gym"`
	ProfileID       string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Comment is a stored comment.
type Comment struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	VideoID   string    `json:"video"`
	ProfileID string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Upload records a multipart upload the server received.
type Upload struct {
	Field    string
	Filename string
	Size     int
	Form     map[string]string
}

// Server is the fake backend.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	seq      int
	users    map[string]*User
	profiles map[string]*Profile
	gyms     []*Gym
	videos   []*Video
	comments map[string][]*Comment
	uploads  []Upload
	failures map[string]int
	calls    map[string]int
}

// NewServer starts a fake backend. Close it when done.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		users:    make(map[string]*User),
		profiles: make(map[string]*Profile),
		comments: make(map[string][]*Comment),
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.track)
	s.routes(r)
	s.srv = httptest.NewServer(r)
	return s
}

// URL is the base URL to point the client at.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

func routeKey(method, route string) string {
	return method + " " + route
}

// Fail makes every request to route (a gin pattern such as
// "/videos/:id/like") answer with status until Recover is called.
func (s *Server) Fail(method, route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[routeKey(method, route)] = status
}

// Recover clears an injected failure.
func (s *Server) Recover(method, route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, routeKey(method, route))
}

// Calls reports how many requests hit route, failed ones included.
func (s *Server) Calls(method, route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[routeKey(method, route)]
}

// Uploads returns the multipart uploads received so far.
func (s *Server) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Upload(nil), s.uploads...)
}

func (s *Server) track(c *gin.Context) {
	key := routeKey(c.Request.Method, c.FullPath())
	s.mu.Lock()
	s.calls[key]++
	status, fail := s.failures[key]
	s.mu.Unlock()

	if fail {
		c.AbortWithStatusJSON(status, gin.H{"message": "injected failure"})
		return
	}
	c.Next()
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

// Seeding helpers. They take the lock themselves.

// AddUser creates an account and its profile and returns both ids.
func (s *Server) AddUser(name, email, password string) (userID, profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.addUserLocked(name, email, password)
	p := &Profile{ID: s.nextID("profile"), UserID: u.ID, SavedVideos: []string{}}
	s.profiles[p.ID] = p
	return u.ID, p.ID
}

func (s *Server) addUserLocked(name, email, password string) *User {
	u := &User{ID: s.nextID("user"), Name: name, Email: email, password: password}
	s.users[u.ID] = u
	return u
}

// SetPreferences sets the difficulty preferences of a profile.
func (s *Server) SetPreferences(profileID string, prefs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[profileID]; ok {
		p.Preferences = prefs
	}
}

// AddGym creates a gym and returns its id.
func (s *Server) AddGym(name, location string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := &Gym{ID: s.nextID("gym"), Name: name, Location: location}
	s.gyms = append(s.gyms, g)
	return g.ID
}

// AddVideo stores a video and returns its id.
func (s *Server) AddVideo(gymID, profileID, difficulty, description string, likes ...string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := &Video{
		ID:              s.nextID("video"),
		DifficultyLevel: difficulty,
		Description:     description,
		Likes:           append([]string{}, likes...),
		GymID:           gymID,
		ProfileID:       profileID,
		CreatedAt:       time.Now().UTC(),
	}
	v.VideoURL = "https://cdn.climbreels.test/" + v.ID + ".mp4"
	s.videos = append(s.videos, v)
	return v.ID
}

// AddComment stores a comment and returns its id.
func (s *Server) AddComment(videoID, profileID, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Comment{ID: s.nextID("comment"), Text: text, VideoID: videoID, ProfileID: profileID, CreatedAt: time.Now().UTC()}
	s.comments[videoID] = append(s.comments[videoID], c)
	return c.ID
}

// Likes returns the stored like list of a video.
func (s *Server) Likes(videoID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v := s.findVideoLocked(videoID); v != nil {
		return append([]string{}, v.Likes...)
	}
	return nil
}

// CommentCount returns how many comments a video has.
func (s *Server) CommentCount(videoID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.comments[videoID])
}

// VideoCount returns how many videos are stored.
func (s *Server) VideoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.videos)
}

func (s *Server) findVideoLocked(id string) *Video {
	for _, v := range s.videos {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (s *Server) profileForUserLocked(userID string) *Profile {
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// Wire views with populated references, the way the backend sends them.

func (s *Server) profileViewLocked(p *Profile) gin.H {
	if p == nil {
		return nil
	}
	view := gin.H{
		"_id":         p.ID,
		"bio":         p.Bio,
		"location":    p.Location,
		"preferences": p.Preferences,
		"savedVideos": p.SavedVideos,
	}
	if p.ClimbingLevel != "" {
		view["climbingLevel"] = p.ClimbingLevel
	}
	if u, ok := s.users[p.UserID]; ok {
		view["user"] = u
	}
	return view
}

func (s *Server) videoViewLocked(v *Video) gin.H {
	return gin.H{
		"_id":             v.ID,
		"videoUrl":        v.VideoURL,
		"description":     v.Description,
		"difficultyLevel": v.DifficultyLevel,
		"likes":           v.Likes,
		"likesCount":      len(v.Likes),
		"gym":             v.GymID,
		"profile":         s.profileViewLocked(s.profiles[v.ProfileID]),
		"createdAt":       v.CreatedAt,
	}
}

func (s *Server) commentViewLocked(c *Comment) gin.H {
	return gin.H{
		"_id":       c.ID,
		"text":      c.Text,
		"video":     c.VideoID,
		"profile":   s.profileViewLocked(s.profiles[c.ProfileID]),
		"createdAt": c.CreatedAt,
	}
}

func (s *Server) videosViewLocked(keep func(*Video) bool) []gin.H {
	out := []gin.H{}
	for _, v := range s.videos {
		if keep(v) {
			out = append(out, s.videoViewLocked(v))
		}
	}
	return out
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"message": what + " not found"})
}

func (s *Server) routes(r *gin.Engine) {
	r.POST("/auth/login", s.login)
	r.POST("/auth/register", s.register)

	r.GET("/gyms", s.listGyms)
	r.GET("/gyms/gyms-with-videos", s.listGymsWithVideos)

	r.GET("/videos", s.listVideos)
	r.POST("/videos", s.uploadVideo)
	r.GET("/videos/gym/:gymId", s.videosByGym)
	r.GET("/videos/profile/:profileId/videos", s.videosByProfile)
	r.GET("/videos/preferences/:userId", s.videosByPreferences)
	r.DELETE("/videos/:id", s.deleteVideo)
	r.POST("/videos/:id/like", s.toggleLike)
	r.POST("/videos/:id/save", s.toggleSave)
	r.GET("/videos/:id/comments", s.listComments)
	r.POST("/videos/:id/comment", s.addComment)

	r.POST("/profile", s.createProfile)
	r.GET("/profile/search", s.searchProfiles)
	r.GET("/profile/:id", s.getProfile)
	r.PUT("/profile/:id", s.updateProfile)
	r.POST("/users/:id/upload-image", s.uploadImage)
}

func (s *Server) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == body.Email && u.password == body.Password {
			c.JSON(http.StatusOK, gin.H{"token": "token-" + u.ID, "user": u})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
}

func (s *Server) register(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, email and password are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == body.Email {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
	}
	u := s.addUserLocked(body.Name, body.Email, body.Password)
	c.JSON(http.StatusCreated, gin.H{"token": "token-" + u.ID, "user": u})
}

func (s *Server) listGyms(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.gyms)
}

func (s *Server) listGymsWithVideos(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []gin.H{}
	for _, g := range s.gyms {
		videos := s.videosViewLocked(func(v *Video) bool { return v.GymID == g.ID })
		if len(videos) == 0 {
			continue
		}
		out = append(out, gin.H{"_id": g.ID, "name": g.Name, "location": g.Location, "videos": videos})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listVideos(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.videosViewLocked(func(*Video) bool { return true }))
}

func (s *Server) videosByGym(c *gin.Context) {
	gymID := c.Param("gymId")
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.videosViewLocked(func(v *Video) bool { return v.GymID == gymID }))
}

func (s *Server) videosByProfile(c *gin.Context) {
	profileID := c.Param("profileId")
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.videosViewLocked(func(v *Video) bool { return v.ProfileID == profileID }))
}

func (s *Server) videosByPreferences(c *gin.Context) {
	userID := c.Param("userId")
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileForUserLocked(userID)
	if p == nil {
		notFound(c, "Profile")
		return
	}
	c.JSON(http.StatusOK, s.videosViewLocked(func(v *Video) bool {
		if len(p.Preferences) == 0 {
			return true
		}
		for _, pref := range p.Preferences {
			if strings.EqualFold(pref, v.DifficultyLevel) {
				return true
			}
		}
		return false
	}))
}

func readUpload(c *gin.Context, field string) (Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return Upload{}, err
	}
	f, err := fh.Open()
	if err != nil {
		return Upload{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Upload{}, err
	}

	form := map[string]string{}
	if mf, err := c.MultipartForm(); err == nil {
		for k, v := range mf.Value {
			if len(v) > 0 {
				form[k] = v[0]
			}
		}
	}
	return Upload{Field: field, Filename: fh.Filename, Size: len(data), Form: form}, nil
}

func (s *Server) uploadVideo(c *gin.Context) {
	up, err := readUpload(c, "video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "video file is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads = append(s.uploads, up)
	v := &Video{
		ID:              s.nextID("video"),
		Description:     up.Form["description"],
		DifficultyLevel: up.Form["difficultyLevel"],
		Likes:           []string{},
		GymID:           up.Form["gymId"],
		ProfileID:       up.Form["profileId"],
		CreatedAt:       time.Now().UTC(),
	}
	v.VideoURL = "https://cdn.climbreels.test/" + v.ID + "/" + up.Filename
	s.videos = append(s.videos, v)
	c.JSON(http.StatusCreated, s.videoViewLocked(v))
}

func (s *Server) deleteVideo(c *gin.Context) {
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.videos {
		if v.ID == id {
			s.videos = append(s.videos[:i], s.videos[i+1:]...)
			delete(s.comments, id)
			c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
			return
		}
	}
	notFound(c, "Video")
}

func bindUserID(c *gin.Context) (string, bool) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId is required"})
		return "", false
	}
	return body.UserID, true
}

func toggle(list []string, id string) ([]string, bool) {
	for i, existing := range list {
		if existing == id {
			return append(list[:i:i], list[i+1:]...), false
		}
	}
	return append(list, id), true
}

func (s *Server) toggleLike(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.findVideoLocked(c.Param("id"))
	if v == nil {
		notFound(c, "Video")
		return
	}
	var added bool
	v.Likes, added = toggle(v.Likes, userID)
	msg := "Video unliked"
	if added {
		msg = "Video liked"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "likesCount": len(v.Likes)})
}

func (s *Server) toggleSave(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.findVideoLocked(c.Param("id"))
	if v == nil {
		notFound(c, "Video")
		return
	}
	p := s.profileForUserLocked(userID)
	if p == nil {
		notFound(c, "Profile")
		return
	}
	var added bool
	p.SavedVideos, added = toggle(p.SavedVideos, v.ID)
	msg := "Video unsaved"
	if added {
		msg = "Video saved"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "savedVideos": p.SavedVideos})
}

func (s *Server) listComments(c *gin.Context) {
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []gin.H{}
	for _, cm := range s.comments[id] {
		out = append(out, s.commentViewLocked(cm))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) addComment(c *gin.Context) {
	var body struct {
		Text   string `json:"text"`
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.findVideoLocked(c.Param("id"))
	if v == nil {
		notFound(c, "Video")
		return
	}
	var profileID string
	if p := s.profileForUserLocked(body.UserID); p != nil {
		profileID = p.ID
	}
	cm := &Comment{ID: s.nextID("comment"), Text: body.Text, VideoID: v.ID, ProfileID: profileID, CreatedAt: time.Now().UTC()}
	s.comments[v.ID] = append(s.comments[v.ID], cm)
	c.JSON(http.StatusCreated, s.commentViewLocked(cm))
}

type profileBody struct {
	User           string   `json:"user"`
	Bio            string   `json:"bio"`
	Location       string   `json:"location"`
	ClimbingLevel  string   `json:"climbingLevel"`
	ProfilePicture string   `json:"profilePicture"`
	Preferences    []string `json:"preferences"`
}

func (s *Server) createProfile(c *gin.Context) {
	var body profileBody
	if err := c.ShouldBindJSON(&body); err != nil || body.User == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[body.User]; !ok {
		notFound(c, "User")
		return
	}
	if s.profileForUserLocked(body.User) != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Profile already exists"})
		return
	}
	p := &Profile{
		ID:            s.nextID("profile"),
		UserID:        body.User,
		Bio:           body.Bio,
		Location:      body.Location,
		ClimbingLevel: body.ClimbingLevel,
		Preferences:   body.Preferences,
		SavedVideos:   []string{},
	}
	s.profiles[p.ID] = p
	c.JSON(http.StatusCreated, s.profileViewLocked(p))
}

func (s *Server) searchProfiles(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []gin.H{}
	for _, p := range s.profiles {
		u, ok := s.users[p.UserID]
		if ok && q != "" && strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, s.profileViewLocked(p))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProfile(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileForUserLocked(c.Param("id"))
	if p == nil {
		notFound(c, "Profile")
		return
	}
	c.JSON(http.StatusOK, s.profileViewLocked(p))
}

func (s *Server) updateProfile(c *gin.Context) {
	var body profileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[c.Param("id")]
	if !ok {
		notFound(c, "Profile")
		return
	}
	if body.Bio != "" {
		p.Bio = body.Bio
	}
	if body.Location != "" {
		p.Location = body.Location
	}
	if body.ClimbingLevel != "" {
		p.ClimbingLevel = body.ClimbingLevel
	}
	if body.Preferences != nil {
		p.Preferences = body.Preferences
	}
	c.JSON(http.StatusOK, s.profileViewLocked(p))
}

func (s *Server) uploadImage(c *gin.Context) {
	up, err := readUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		notFound(c, "User")
		return
	}
	s.uploads = append(s.uploads, up)
	u.Image = "https://cdn.climbreels.test/avatars/" + u.ID + "/" + up.Filename
	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "image": u.Image, "user": u})
}
