package cancelreminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventcal/internal/core/domain/event"
	service "eventcal/internal/core/services/cancel_reminder"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

const EVENT_ID = "e9b1ca2f-f6f2-4004-9b2c-63a31675a048"

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

func TestCancelReminderHandler(t *testing.T) {
	cases := []struct {
		id             string
		serviceError   error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "canceled",
			expectedStatus: http.StatusNoContent,
			expectedInput:  &service.Input{EventID: event.ID(EVENT_ID)},
		},
		{
			id:             "internal-error",
			serviceError:   context.DeadlineExceeded,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("DELETE", "/events/"+EVENT_ID+"/reminder", nil)
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceError}
			handler := New(service)
			router := chi.NewRouter()
			router.Delete("/events/{eventID}/reminder", handler.ServeHTTP)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
