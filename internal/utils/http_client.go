package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with every outbound request.
const DefaultUserAgent = "go-discovery-config"

// HTTPClient wraps *resty.Client so application-specific behavior can be
// added without touching the upstream type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// A non-positive timeout leaves resty's default (no timeout).
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", DefaultUserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
