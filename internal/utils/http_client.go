package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient bound to baseURL. A baseURL without a
// scheme is treated as plain http. A non-positive timeout leaves resty's
// default (no timeout) in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/api/notes/42")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	cli := resty.New().
		SetBaseURL(NormalizeBaseURL(baseURL)).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}

	return &HTTPClient{Client: cli}
}

// NormalizeBaseURL trims trailing slashes and adds "http://" when no scheme
// is present.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return ""
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return baseURL
}
