package notifier

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/trigger"
)

// Composite fans a notification out to every configured notifier. All
// notifiers are attempted, the first error encountered is returned.
type Composite struct {
	notifiers []trigger.Notifier
}

func NewComposite(notifiers ...trigger.Notifier) *Composite {
	for _, n := range notifiers {
		if n == nil {
			panic(e.NewNilArgumentError("notifier"))
		}
	}
	return &Composite{notifiers: notifiers}
}

func (c *Composite) Show(ctx context.Context, title string, body string) error {
	var firstErr error
	for _, n := range c.notifiers {
		if err := n.Show(ctx, title, body); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
