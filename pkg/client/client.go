package client

import (
	"sync"
	"time"

	"github.com/climbreels/cli/pkg/config"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// UserAgent identifies this client to the backend.
const UserAgent = "ClimbReels-CLI/0.1.0"

// RequestIDHeader carries a per-request id so client and server logs can
// be correlated.
const RequestIDHeader = "X-Request-ID"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	mu         sync.Mutex
	httpClient *resty.Client
	authToken  string
)

func newClient(baseURL string, timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", UserAgent)
	c.SetHeader("Accept", "application/json")
	c.JSONMarshal = json.Marshal
	c.JSONUnmarshal = json.Unmarshal

	if authToken != "" {
		c.SetAuthToken(authToken)
	}

	c.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.Header.Set(RequestIDHeader, uuid.NewString())
		}
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL, "request_id", req.Header.Get(RequestIDHeader))
		return nil
	})

	c.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response",
			"status", resp.StatusCode(),
			"url", resp.Request.URL,
			"request_id", resp.Request.Header.Get(RequestIDHeader),
			"elapsed", resp.Time())
		return nil
	})

	return c
}

// Init initializes the HTTP client from config.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	httpClient = newClient(
		config.GetString("api.base_url"),
		time.Duration(config.GetInt("api.timeout"))*time.Second,
	)
}

// InitWithBaseURL initializes the client against an explicit backend,
// keeping the configured timeout.
func InitWithBaseURL(baseURL string) {
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	mu.Lock()
	defer mu.Unlock()
	httpClient = newClient(baseURL, timeout)
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	mu.Lock()
	c := httpClient
	mu.Unlock()
	if c == nil {
		Init()
		mu.Lock()
		c = httpClient
		mu.Unlock()
	}
	return c
}

// SetAuthToken sets the bearer token sent with every request
func SetAuthToken(token string) {
	c := GetClient()
	mu.Lock()
	defer mu.Unlock()
	authToken = token
	c.SetAuthToken(token)
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	c := GetClient()
	mu.Lock()
	defer mu.Unlock()
	authToken = ""
	c.SetAuthToken("")
	c.Header.Del("Authorization")
}

// AuthToken returns the token currently attached to requests.
func AuthToken() string {
	mu.Lock()
	defer mu.Unlock()
	return authToken
}
