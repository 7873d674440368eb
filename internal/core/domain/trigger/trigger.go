package trigger

import (
	"eventcal/internal/core/domain/event"
	"time"
)

// Key identifies the reminder trigger of a single event. Arming a trigger
// under a key that already has a pending trigger replaces it, so there is at
// most one pending trigger per key at any time.
type Key string

// KeyForEvent derives the trigger key from the event identity. Events always
// get an id at creation; the title fallback exists only for id-less values
// and two same-titled events would share it, so the id path is the default.
func KeyForEvent(ev event.Event) Key {
	if ev.ID != "" {
		return KeyForEventID(ev.ID)
	}
	return Key("title:" + ev.Title)
}

func KeyForEventID(id event.ID) Key {
	return Key("event:" + string(id))
}

// Trigger is a scheduled one-shot reminder. Payload is the text delivered to
// the notification surface when the trigger fires.
type Trigger struct {
	Key     Key
	FireAt  time.Time
	Payload string
}

// FireAtClock is the wall-clock representation of the fire time, used for
// the "reminder set for HH:MM" confirmation.
func (t Trigger) FireAtClock() string {
	return event.Clock(t.FireAt)
}
