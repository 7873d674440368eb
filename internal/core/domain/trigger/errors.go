package trigger

import "errors"

var (
	ErrParseLeadTime    = errors.New("invalid lead time, expected one of 15m, 1h, 1d")
	ErrSchedulingFailed = errors.New("could not arm reminder trigger")
)
