package event

import "errors"

var (
	ErrEventDoesNotExist  = errors.New("event does not exist")
	ErrEventAlreadyExists = errors.New("event already exists")
	ErrEndBeforeStart     = errors.New("event end time is before its start time")
	ErrParseDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrParseClockTime     = errors.New("invalid time, expected HH:MM")
)
