package event

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

const (
	dateFormat  = "Y-m-d"
	clockFormat = "H:i"
)

// Date is a calendar date as entered by the user, with no timezone attached.
// The store matches dates by exact equality, so the value is kept normalized.
type Date struct {
	v string
}

func (d Date) String() string {
	return d.v
}

func (d Date) IsZero() bool {
	return d.v == ""
}

func ParseDate(value string) (d Date, err error) {
	c := carbon.ParseByFormat(value, dateFormat)
	if c.Error != nil {
		return d, ErrParseDate
	}
	d.v = c.ToDateString()
	return d, nil
}

// At combines the date with a wall-clock time ("HH:MM") into an absolute
// instant in the local timezone.
func (d Date) At(clock string) (time.Time, error) {
	c := carbon.ParseByFormat(d.v+" "+clock, dateFormat+" "+clockFormat, carbon.Local)
	if c.Error != nil {
		return time.Time{}, ErrParseClockTime
	}
	return c.Carbon2Time(), nil
}

// Clock formats an instant back to the wall-clock representation shown to
// the user ("reminder set for HH:MM").
func Clock(t time.Time) string {
	return carbon.Time2Carbon(t).Format(clockFormat)
}
