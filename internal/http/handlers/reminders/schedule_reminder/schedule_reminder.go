package schedulereminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/core/services"
	service "eventcal/internal/core/services/schedule_reminder"
	"eventcal/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
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

// Input accepts either a lead time token (15m, 1h, 1d) or an exact fire
// time, not both.
type Input struct {
	LeadTime string     `json:"lead_time"`
	At       *time.Time `json:"at"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	if i.LeadTime != "" && i.At != nil {
		return errors.New("lead_time and at are mutually exclusive")
	}
	if i.LeadTime == "" && i.At == nil {
		return errors.New("either lead_time or at is required")
	}
	return validation.ValidateStruct(&i,
		validation.Field(&i.LeadTime, validation.Length(0, 8)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.RenderError(rw, "event ID is required", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	var leadTime trigger.LeadTime
	if input.At != nil {
		leadTime = trigger.NewCustomLeadTime(*input.At)
	} else {
		var err error
		leadTime, err = trigger.ParseLeadTime(input.LeadTime)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{EventID: event.ID(eventID), LeadTime: leadTime},
	)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrEventDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	reminder := response.Reminder{}
	reminder.FromDomainType(result.Trigger)
	response.Render(rw, Result{Reminder: reminder}, http.StatusCreated)
}
