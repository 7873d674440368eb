package response

import (
	"eventcal/internal/core/domain/event"
	"time"
)

type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Event) FromDomainType(de event.Event) {
	e.ID = string(de.ID)
	e.Title = de.Title
	e.Date = de.Date.String()
	e.StartTime = de.StartTime
	e.EndTime = de.EndTime
	e.Note = de.Note
	e.CreatedAt = de.CreatedAt
}
