package trigger

import (
	"context"
	"sync"
	"time"
)

// TestTimer keeps pending triggers in a map keyed by trigger key, so re-arm
// overwrites exactly like the real timer does.
type TestTimer struct {
	ArmError    error
	CancelError error
	DueError    error
	Pending     map[Key]Trigger
	Canceled    []Key
	lock        sync.Mutex
}

func NewTestTimer() *TestTimer {
	return &TestTimer{Pending: make(map[Key]Trigger)}
}

func (t *TestTimer) Arm(ctx context.Context, tr Trigger) error {
	if t.ArmError != nil {
		return t.ArmError
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	t.Pending[tr.Key] = tr
	return nil
}

func (t *TestTimer) ArmIfAbsent(ctx context.Context, tr Trigger) error {
	if t.ArmError != nil {
		return t.ArmError
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	if _, ok := t.Pending[tr.Key]; !ok {
		t.Pending[tr.Key] = tr
	}
	return nil
}

func (t *TestTimer) Cancel(ctx context.Context, key Key) error {
	if t.CancelError != nil {
		return t.CancelError
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	delete(t.Pending, key)
	t.Canceled = append(t.Canceled, key)
	return nil
}

func (t *TestTimer) Due(ctx context.Context, now time.Time, limit uint) ([]Trigger, error) {
	if t.DueError != nil {
		return nil, t.DueError
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	due := make([]Trigger, 0)
	for key, tr := range t.Pending {
		if uint(len(due)) >= limit {
			break
		}
		if !tr.FireAt.After(now) {
			due = append(due, tr)
			delete(t.Pending, key)
		}
	}
	return due, nil
}

type TestDispatcher struct {
	Error      error
	Dispatched []Trigger
	lock       sync.Mutex
}

func NewTestDispatcher() *TestDispatcher {
	return &TestDispatcher{}
}

func (d *TestDispatcher) DispatchTrigger(ctx context.Context, t Trigger) error {
	if d.Error != nil {
		return d.Error
	}
	d.lock.Lock()
	defer d.lock.Unlock()
	d.Dispatched = append(d.Dispatched, t)
	return nil
}

type TestNotification struct {
	Title string
	Body  string
}

type TestNotifier struct {
	Error error
	Shown []TestNotification
	lock  sync.Mutex
}

func NewTestNotifier() *TestNotifier {
	return &TestNotifier{}
}

func (n *TestNotifier) Show(ctx context.Context, title string, body string) error {
	if n.Error != nil {
		return n.Error
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Shown = append(n.Shown, TestNotification{Title: title, Body: body})
	return nil
}
