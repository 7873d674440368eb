package createevent

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/services"
	service "eventcal/internal/core/services/create_event"
	"eventcal/internal/http/handlers/response"

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

type Input struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note"`
}

type Result struct {
	Event response.Event `json:"event"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Date, validation.Required, validation.Length(1, 32)),
		validation.Field(&i.StartTime, validation.Required, validation.Length(1, 8)),
		validation.Field(&i.EndTime, validation.Required, validation.Length(1, 8)),
		validation.Field(&i.Note, validation.Length(0, 1024)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Title:     input.Title,
			Date:      input.Date,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			Note:      input.Note,
		},
	)
	if err != nil {
		var validationErr *e.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	createdEvent := response.Event{}
	createdEvent.FromDomainType(result.Event)
	response.Render(rw, Result{Event: createdEvent}, http.StatusCreated)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, event.ErrParseDate) ||
		errors.Is(err, event.ErrParseClockTime) ||
		errors.Is(err, event.ErrEndBeforeStart) ||
		errors.Is(err, event.ErrEventAlreadyExists))
}
