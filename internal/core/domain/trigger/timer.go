package trigger

import (
	"context"
	"time"
)

// Timer arms one-shot wake-ups. Arm replaces any pending trigger under the
// same key and the armed state survives process restarts; Cancel is a no-op
// when nothing is pending under the key.
type Timer interface {
	Arm(ctx context.Context, t Trigger) error
	Cancel(ctx context.Context, key Key) error
}

// Store is the scheduler-side view of the timer. Due consumes and returns
// the triggers whose fire time is not after now, atomically with respect to
// concurrent arms: a trigger re-armed to a later fire time while a drain is
// in flight is either returned by the drain or left pending, never lost.
// ArmIfAbsent restores a consumed trigger without overwriting a newer arm
// made under the same key since the drain.
type Store interface {
	Timer
	ArmIfAbsent(ctx context.Context, t Trigger) error
	Due(ctx context.Context, now time.Time, limit uint) ([]Trigger, error)
}

// Dispatcher hands a fired trigger over for notification delivery.
type Dispatcher interface {
	DispatchTrigger(ctx context.Context, t Trigger) error
}

// Notifier renders a user-visible notification. Fire-and-forget, no
// acknowledgment is expected.
type Notifier interface {
	Show(ctx context.Context, title string, body string) error
}
