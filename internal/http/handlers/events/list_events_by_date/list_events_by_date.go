package listeventsbydate

import (
	"errors"
	"net/http"

	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/services"
	service "eventcal/internal/core/services/list_events_by_date"
	"eventcal/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Events []response.Event `json:"events"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		service.Input{Date: r.URL.Query().Get("date")},
	)
	if err != nil {
		var validationErr *e.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, event.ErrParseDate):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	events := make([]response.Event, len(result.Events))
	for ix, ev := range result.Events {
		events[ix].FromDomainType(ev)
	}
	response.Render(rw, Result{Events: events}, http.StatusOK)
}
