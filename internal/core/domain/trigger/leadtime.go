package trigger

import (
	c "eventcal/internal/core/domain/common"
	"time"
)

// LeadTime selects when a reminder fires relative to its event. It is either
// one of the canonical fixed offsets before the event start, or an arbitrary
// custom instant independent of the event start entirely.
type LeadTime struct {
	offset time.Duration
	custom c.Optional[time.Time]
}

var (
	LeadTime15Minutes = LeadTime{offset: 15 * time.Minute}
	LeadTimeHour      = LeadTime{offset: time.Hour}
	LeadTimeDay       = LeadTime{offset: 24 * time.Hour}
)

func ParseLeadTime(value string) (l LeadTime, err error) {
	switch value {
	case "15m":
		return LeadTime15Minutes, nil
	case "1h":
		return LeadTimeHour, nil
	case "1d":
		return LeadTimeDay, nil
	default:
		return l, ErrParseLeadTime
	}
}

// NewCustomLeadTime fixes the fire time to the given instant verbatim. The
// instant may precede or follow the event start by any amount.
func NewCustomLeadTime(at time.Time) LeadTime {
	return LeadTime{custom: c.NewOptional(at, true)}
}

func (l LeadTime) IsCustom() bool {
	return l.custom.IsPresent
}

func (l LeadTime) String() string {
	if l.custom.IsPresent {
		return "custom"
	}
	switch l.offset {
	case 15 * time.Minute:
		return "15m"
	case time.Hour:
		return "1h"
	case 24 * time.Hour:
		return "1d"
	}
	return "unknown"
}

// Resolve computes the absolute fire instant. No lower bound is enforced, an
// offset larger than the time remaining yields an instant in the past.
func (l LeadTime) Resolve(startTime time.Time) time.Time {
	if l.custom.IsPresent {
		return l.custom.Value
	}
	return startTime.Add(-l.offset)
}
