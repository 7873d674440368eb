package schedulereminder

import (
	"context"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/core/services"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const EVENT_ID = event.ID("4f9c8b1e-61cd-4a0b-9e5a-77f0ab9e2f10")

var (
	Now       = time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local)
	StartTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	repository *event.TestEventRepository
	timer      *trigger.TestTimer
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.repository = event.NewTestEventRepository()
	date, _ := event.ParseDate("2024-03-01")
	suite.repository.Events = []event.Event{
		{
			ID:        EVENT_ID,
			Title:     "Standup",
			Date:      date,
			StartTime: StartTime,
			EndTime:   StartTime.Add(15 * time.Minute),
		},
	}
	suite.timer = trigger.NewTestTimer()
	suite.service = New(
		suite.logger,
		suite.repository,
		suite.timer,
		func() time.Time { return Now },
	)
}

func TestScheduleReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestFixedOffsets() {
	cases := []struct {
		id             string
		leadTime       trigger.LeadTime
		expectedFireAt time.Time
	}{
		{
			id:             "15 minutes before",
			leadTime:       trigger.LeadTime15Minutes,
			expectedFireAt: time.Date(2024, 3, 1, 8, 45, 0, 0, time.Local),
		},
		{
			id:             "1 hour before",
			leadTime:       trigger.LeadTimeHour,
			expectedFireAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local),
		},
		{
			id:             "1 day before",
			leadTime:       trigger.LeadTimeDay,
			expectedFireAt: time.Date(2024, 2, 29, 9, 0, 0, 0, time.Local),
		},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			result, err := s.service.Run(
				context.Background(),
				Input{EventID: EVENT_ID, LeadTime: testcase.leadTime},
			)

			assert := s.Require()
			assert.Nil(err)
			assert.Equal(testcase.expectedFireAt, result.Trigger.FireAt)
			assert.Equal("Standup", result.Trigger.Payload)

			pending, ok := s.timer.Pending[result.Trigger.Key]
			assert.True(ok)
			assert.Equal(testcase.expectedFireAt, pending.FireAt)
		})
	}
}

func (s *testSuite) TestCustomInstantIgnoresEventStart() {
	customAt := time.Date(2024, 2, 28, 12, 0, 0, 0, time.Local)

	result, err := s.service.Run(
		context.Background(),
		Input{EventID: EVENT_ID, LeadTime: trigger.NewCustomLeadTime(customAt)},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(customAt, result.Trigger.FireAt)
}

func (s *testSuite) TestRearmReplacesPendingTrigger() {
	first, err := s.service.Run(
		context.Background(),
		Input{EventID: EVENT_ID, LeadTime: trigger.LeadTimeHour},
	)
	s.Require().Nil(err)

	second, err := s.service.Run(
		context.Background(),
		Input{EventID: EVENT_ID, LeadTime: trigger.LeadTime15Minutes},
	)
	s.Require().Nil(err)

	assert := s.Require()
	assert.Equal(first.Trigger.Key, second.Trigger.Key)
	assert.Len(s.timer.Pending, 1)
	assert.Equal(second.Trigger.FireAt, s.timer.Pending[second.Trigger.Key].FireAt)
}

func (s *testSuite) TestConfirmationClock() {
	result, err := s.service.Run(
		context.Background(),
		Input{EventID: EVENT_ID, LeadTime: trigger.LeadTime15Minutes},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal("08:45", result.Trigger.FireAtClock())
}

func (s *testSuite) TestPastFireTimeIsArmedWithWarning() {
	customAt := Now.Add(-time.Hour)

	result, err := s.service.Run(
		context.Background(),
		Input{EventID: EVENT_ID, LeadTime: trigger.NewCustomLeadTime(customAt)},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.Len(s.timer.Pending, 1)
	assert.Equal(customAt, result.Trigger.FireAt)

	warned := false
	for _, record := range s.logger.Logged {
		if record.Level == logging.WARNING {
			warned = true
		}
	}
	assert.True(warned)
}

func (s *testSuite) TestEventDoesNotExist() {
	_, err := s.service.Run(
		context.Background(),
		Input{EventID: event.ID("unknown"), LeadTime: trigger.LeadTimeHour},
	)

	assert := s.Require()
	assert.ErrorIs(err, event.ErrEventDoesNotExist)
	assert.Empty(s.timer.Pending)
}

func (s *testSuite) TestTimerFailure() {
	s.timer.ArmError = errors.New("timer is down")

	_, err := s.service.Run(
		context.Background(),
		Input{EventID: EVENT_ID, LeadTime: trigger.LeadTimeHour},
	)

	s.Require().ErrorIs(err, trigger.ErrSchedulingFailed)
}
