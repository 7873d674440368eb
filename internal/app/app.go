package app

import (
	"fmt"
	"net/http"

	"eventcal/internal/app/deps"
	"eventcal/internal/app/services"
	createevent "eventcal/internal/http/handlers/events/create_event"
	listeventsbydate "eventcal/internal/http/handlers/events/list_events_by_date"
	cancelreminder "eventcal/internal/http/handlers/reminders/cancel_reminder"
	schedulereminder "eventcal/internal/http/handlers/reminders/schedule_reminder"
	"eventcal/internal/http/handlers/stream"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	eventsRouter := chi.NewRouter()
	eventsRouter.Method(http.MethodPost, "/", createevent.New(s.CreateEvent))
	eventsRouter.Method(http.MethodGet, "/", listeventsbydate.New(s.ListEventsByDate))
	eventsRouter.Method(
		http.MethodGet,
		"/stream",
		stream.New(deps.Logger, deps.SseServer, deps.Config.EventsStreamID),
	)
	eventsRouter.Method(http.MethodPost, "/{eventID}/reminder", schedulereminder.New(s.ScheduleReminder))
	eventsRouter.Method(http.MethodDelete, "/{eventID}/reminder", cancelreminder.New(s.CancelReminder))

	notificationsRouter := chi.NewRouter()
	notificationsRouter.Method(
		http.MethodGet,
		"/stream",
		stream.New(deps.Logger, deps.SseServer, deps.Config.NotificationsStreamID),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/events", eventsRouter)
	router.Mount("/notifications", notificationsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
