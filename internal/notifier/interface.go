package notifier

import "context"

// Notifier delivers a short user-facing message.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}
