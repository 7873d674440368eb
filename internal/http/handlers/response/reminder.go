package response

import (
	"eventcal/internal/core/domain/trigger"
	"time"
)

type Reminder struct {
	Key         string    `json:"key"`
	FireAt      time.Time `json:"fire_at"`
	FireAtClock string    `json:"fire_at_clock"`
}

func (r *Reminder) FromDomainType(t trigger.Trigger) {
	r.Key = string(t.Key)
	r.FireAt = t.FireAt
	r.FireAtClock = t.FireAtClock()
}
