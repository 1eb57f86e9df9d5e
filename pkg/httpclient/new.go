package httpclient

import "net/http"

const userAgent = "transcribe-pipeline/0.1.0"

type implClient struct {
	http *http.Client
}

// Option customizes the client.
type Option func(*implClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *implClient) {
		if client != nil {
			c.http = client
		}
	}
}

// New creates a Client. The default transport applies no request timeout.
func New(opts ...Option) Client {
	c := &implClient{http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
