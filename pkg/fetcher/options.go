package fetcher

import (
	"net/http"
	"strings"
	"time"

	"github.com/agentstation/storefront/pkg/constants"
)

type config struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	token       string
	tokenHeader string
}

func defaultConfig() *config {
	return &config{
		baseURL: constants.DefaultAPIURL,
		timeout: constants.DefaultHTTPTimeout,
	}
}

// Option configures a Client.
type Option func(*config)

// WithBaseURL points the client at a different catalog API.
func WithBaseURL(url string) Option {
	return func(c *config) {
		if url = strings.TrimSpace(url); url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithHTTPClient supplies the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithToken sends token on every request, as a Bearer token unless header
// names a different header.
func WithToken(token, header string) Option {
	return func(c *config) {
		c.token = token
		c.tokenHeader = header
	}
}
