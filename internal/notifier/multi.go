package notifier

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/transcribe-pipeline/internal/logger"
)

type multi []Notifier

// Multi delivers to every target in order and joins their errors.
func Multi(targets ...Notifier) Notifier {
	return multi(targets)
}

func (m multi) Notify(ctx context.Context, title, message string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, title, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type bestEffort struct {
	next   Notifier
	logger logger.Logger
}

// BestEffort swallows delivery errors from next after logging them.
func BestEffort(next Notifier, log logger.Logger) Notifier {
	return &bestEffort{next: next, logger: log}
}

func (b *bestEffort) Notify(ctx context.Context, title, message string) error {
	if err := b.next.Notify(ctx, title, message); err != nil {
		b.logger.Warn(ctx, "Notification failed: %v", err)
	}
	return nil
}
