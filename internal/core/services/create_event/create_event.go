package createevent

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/services"
	"time"
)

type Input struct {
	Title     string
	Date      string
	StartTime string
	EndTime   string
	Note      string
}

// Validate checks the required fields before anything is parsed or written,
// so an empty date is a validation error, not a parse error.
func (i Input) Validate() error {
	emptyFields := make([]string, 0)
	if i.Title == "" {
		emptyFields = append(emptyFields, "title")
	}
	if i.Date == "" {
		emptyFields = append(emptyFields, "date")
	}
	if i.StartTime == "" {
		emptyFields = append(emptyFields, "startTime")
	}
	if i.EndTime == "" {
		emptyFields = append(emptyFields, "endTime")
	}
	if len(emptyFields) > 0 {
		return e.NewValidationError(emptyFields...)
	}
	return nil
}

type Result struct {
	Event event.Event
}

type service struct {
	log             logging.Logger
	eventRepository event.Repository
	publisher       event.Publisher
	identity        event.IdentityGenerator
	now             func() time.Time
}

func New(
	log logging.Logger,
	eventRepository event.Repository,
	publisher event.Publisher,
	identity event.IdentityGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		eventRepository: eventRepository,
		publisher:       publisher,
		identity:        identity,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	date, err := event.ParseDate(input.Date)
	if err != nil {
		return result, err
	}
	startTime, err := date.At(input.StartTime)
	if err != nil {
		return result, err
	}
	endTime, err := date.At(input.EndTime)
	if err != nil {
		return result, err
	}
	if endTime.Before(startTime) {
		return result, event.ErrEndBeforeStart
	}

	createdEvent, err := s.eventRepository.Create(
		ctx,
		event.CreateInput{
			ID:        s.identity.GenerateEventID(),
			Title:     input.Title,
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
			Note:      input.Note,
			CreatedAt: s.now(),
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.publishEvents(ctx)

	s.log.Info(ctx, "Event successfully created.", logging.Entry("event", createdEvent))
	result.Event = createdEvent
	return result, nil
}

// publishEvents pushes the full current set to subscribers. A failed push
// must not fail the creation, the event is already saved.
func (s *service) publishEvents(ctx context.Context) {
	events, err := s.eventRepository.Read(ctx, event.ReadOptions{})
	if err != nil {
		s.log.Warning(ctx, "Could not read events for publishing.", logging.Entry("err", err))
		return
	}
	if err := s.publisher.PublishEvents(ctx, events); err != nil {
		s.log.Warning(ctx, "Could not publish events.", logging.Entry("err", err))
	}
}
