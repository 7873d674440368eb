package trigger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadTime(t *testing.T) {
	cases := []struct {
		value    string
		expected LeadTime
		isError  bool
	}{
		{value: "15m", expected: LeadTime15Minutes},
		{value: "1h", expected: LeadTimeHour},
		{value: "1d", expected: LeadTimeDay},
		{value: "", isError: true},
		{value: "30m", isError: true},
		{value: "custom", isError: true},
		{value: "1 hour", isError: true},
	}

	for _, testcase := range cases {
		t.Run(testcase.value, func(t *testing.T) {
			leadTime, err := ParseLeadTime(testcase.value)
			if testcase.isError {
				assert.ErrorIs(t, err, ErrParseLeadTime)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, testcase.expected, leadTime)
		})
	}
}

func TestResolveFixedOffsets(t *testing.T) {
	startTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

	cases := []struct {
		id       string
		leadTime LeadTime
		expected time.Time
	}{
		{id: "15m", leadTime: LeadTime15Minutes, expected: startTime.Add(-15 * time.Minute)},
		{id: "1h", leadTime: LeadTimeHour, expected: startTime.Add(-time.Hour)},
		{id: "1d", leadTime: LeadTimeDay, expected: startTime.Add(-24 * time.Hour)},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert.Equal(t, testcase.expected, testcase.leadTime.Resolve(startTime))
		})
	}
}

func TestResolveCustomInstant(t *testing.T) {
	startTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	// The custom instant precedes the event date entirely, that is allowed.
	customAt := time.Date(2024, 2, 28, 12, 0, 0, 0, time.Local)

	leadTime := NewCustomLeadTime(customAt)

	assert.True(t, leadTime.IsCustom())
	assert.Equal(t, customAt, leadTime.Resolve(startTime))
}
