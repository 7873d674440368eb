package createevent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	service "eventcal/internal/core/services/create_event"

	"github.com/stretchr/testify/assert"
)

var createdEvent = event.Event{
	ID:        event.ID("e9b1ca2f-f6f2-4004-9b2c-63a31675a048"),
	Title:     "Standup",
	StartTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local),
	EndTime:   time.Date(2024, 3, 1, 9, 15, 0, 0, time.Local),
	CreatedAt: time.Date(2024, 2, 28, 12, 0, 0, 0, time.Local),
}

type stubService struct {
	event event.Event
	err   error
	input *service.Input
}

func newStubService() *stubService {
	return &stubService{event: createdEvent}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Event = s.event
	return result, nil
}

func TestCreateEventHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "created",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "09:00", "end_time": "09:15", "note": "daily sync"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				Title:     "Standup",
				Date:      "2024-03-01",
				StartTime: "09:00",
				EndTime:   "09:15",
				Note:      "daily sync",
			},
		},
		{
			id:             "created-without-note",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "09:00", "end_time": "09:15"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				Title:     "Standup",
				Date:      "2024-03-01",
				StartTime: "09:00",
				EndTime:   "09:15",
			},
		},
		{
			id:             "invalid-json",
			body:           `{"title": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-title",
			body:           `{"date": "2024-03-01", "start_time": "09:00", "end_time": "09:15"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-date",
			body:           `{"title": "Standup", "start_time": "09:00", "end_time": "09:15"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-start-time",
			body:           `{"title": "Standup", "date": "2024-03-01", "end_time": "09:15"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-end-time",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "09:00"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "service-validation-error",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "09:00", "end_time": "09:15"}`,
			serviceError:   e.NewValidationError("title"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid-date",
			body:           `{"title": "Standup", "date": "not-a-date", "start_time": "09:00", "end_time": "09:15"}`,
			serviceError:   event.ErrParseDate,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "invalid-clock-time",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "xx:00", "end_time": "09:15"}`,
			serviceError:   event.ErrParseClockTime,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "end-before-start",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "09:15", "end_time": "09:00"}`,
			serviceError:   event.ErrEndBeforeStart,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "store-write-failure",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "09:00", "end_time": "09:15"}`,
			serviceError:   event.ErrEventAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "internal-error",
			body:           `{"title": "Standup", "date": "2024-03-01", "start_time": "09:00", "end_time": "09:15"}`,
			serviceError:   context.DeadlineExceeded,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/events", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			service := newStubService()
			service.err = testcase.serviceError
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
