package event

import (
	e "eventcal/internal/core/domain/errors"
	"time"
)

type ID string

// Event is a single calendar entry. Events are immutable once created,
// there is no edit flow.
type Event struct {
	ID        ID
	Title     string
	Date      Date
	StartTime time.Time
	EndTime   time.Time
	Note      string
	CreatedAt time.Time
}

func (ev *Event) Validate() error {
	if ev.ID == "" {
		return e.NewInvalidStateError("event ID must be set")
	}
	if ev.Title == "" {
		return e.NewInvalidStateError("event title must not be empty")
	}
	if ev.Date.IsZero() {
		return e.NewInvalidStateError("event date must be set")
	}
	if ev.EndTime.Before(ev.StartTime) {
		return e.NewInvalidStateError("event must not end before it starts")
	}
	return nil
}

type IdentityGenerator interface {
	GenerateEventID() ID
}
