package httpclient

import (
	"fmt"
	"strings"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("POST %s: http %d: %s", e.URL, e.StatusCode, strings.TrimSpace(e.Body))
}
