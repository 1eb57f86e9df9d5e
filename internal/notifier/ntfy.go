package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const userAgent = "transcribe-pipeline/0.1.0"

type ntfy struct {
	endpoint string
	client   *http.Client
}

// NewNtfy publishes notifications to an ntfy topic URL.
func NewNtfy(endpoint string, client *http.Client) Notifier {
	if client == nil {
		client = &http.Client{}
	}
	return &ntfy{endpoint: endpoint, client: client}
}

func (n *ntfy) Notify(ctx context.Context, title, message string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Title", title)
	req.Header.Set("Tags", "transcribe")
	if strings.Contains(strings.ToLower(title), "failed") {
		req.Header.Set("Priority", "high")
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
