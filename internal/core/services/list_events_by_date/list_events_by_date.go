package listeventsbydate

import (
	"context"
	c "eventcal/internal/core/domain/common"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/services"
)

type Input struct {
	Date string
}

type Result struct {
	Events []event.Event
}

type service struct {
	log             logging.Logger
	eventRepository event.Repository
}

func New(
	log logging.Logger,
	eventRepository event.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	return &service{log: log, eventRepository: eventRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Date == "" {
		return result, e.NewValidationError("date")
	}
	date, err := event.ParseDate(input.Date)
	if err != nil {
		return result, err
	}

	events, err := s.eventRepository.Read(
		ctx,
		event.ReadOptions{DateEquals: c.NewOptional(date, true)},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	result.Events = events
	return result, nil
}
