package listeventsbydate

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger          *logging.FakeLogger
	EventRepository *event.TestEventRepository
	Service         services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.EventRepository = event.NewTestEventRepository()
	suite.Service = New(suite.Logger, suite.EventRepository)
}

func TestListEventsByDateService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createEvent(id string, dateValue string) event.Event {
	date, err := event.ParseDate(dateValue)
	s.Require().Nil(err)
	startTime, err := date.At("09:00")
	s.Require().Nil(err)
	endTime, err := date.At("09:15")
	s.Require().Nil(err)
	ev, err := s.EventRepository.Create(context.Background(), event.CreateInput{
		ID:        event.ID(id),
		Title:     "Standup",
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: time.Now(),
	})
	s.Require().Nil(err)
	return ev
}

func (s *testSuite) TestReturnsEventsForDate() {
	matching := s.createEvent("event-1", "2024-03-01")
	s.createEvent("event-2", "2024-03-02")

	result, err := s.Service.Run(context.Background(), Input{Date: "2024-03-01"})

	assert := s.Require()
	assert.Nil(err)
	assert.Len(result.Events, 1)
	assert.Equal(matching.ID, result.Events[0].ID)
}

func (s *testSuite) TestReturnsEmptySetWhenNoEventsMatch() {
	s.createEvent("event-1", "2024-03-02")

	result, err := s.Service.Run(context.Background(), Input{Date: "2024-03-01"})

	assert := s.Require()
	assert.Nil(err)
	assert.Empty(result.Events)
}

func (s *testSuite) TestEmptyDateIsValidationError() {
	result, err := s.Service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Empty(result.Events)
	var validationErr *e.ValidationError
	assert.ErrorAs(err, &validationErr)
	assert.Equal([]string{"date"}, validationErr.Fields)
	assert.Empty(s.EventRepository.ReadWith)
}

func (s *testSuite) TestInvalidDateIsParseError() {
	result, err := s.Service.Run(context.Background(), Input{Date: "not-a-date"})

	assert := s.Require()
	assert.Empty(result.Events)
	assert.ErrorIs(err, event.ErrParseDate)
	assert.Empty(s.EventRepository.ReadWith)
}

func (s *testSuite) TestStoreReadFailure() {
	s.EventRepository.ReadError = context.DeadlineExceeded

	_, err := s.Service.Run(context.Background(), Input{Date: "2024-03-01"})

	s.Require().ErrorIs(err, context.DeadlineExceeded)
}
