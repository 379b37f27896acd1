package trends

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the Trends widget API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	hl         string
	tz         int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger

	mu            sync.Mutex
	cookiesLoaded bool
}

type ClientOption func(*Client)

func NewClient(cfg Config, opts ...ClientOption) *Client {
	jar, _ := cookiejar.New(nil)

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hl:      cfg.HostLanguage,
		tz:      cfg.TimezoneOffset,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
		limiter: newLimiter(cfg.RequestInterval),
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient replaces the HTTP client. A client without a cookie jar gets one.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc.Jar == nil {
			hc.Jar = c.httpClient.Jar
		}
		c.httpClient = hc
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRequestInterval sets the minimum spacing between two provider requests.
func WithRequestInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.limiter = newLimiter(d)
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// country returns the region part of the host language, "US" for "en-US".
func (c *Client) country() string {
	if len(c.hl) < 2 {
		return ""
	}
	return strings.ToUpper(c.hl[len(c.hl)-2:])
}
