package cancelreminder

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/core/services"
)

type Input struct {
	EventID event.ID
}

type Result struct{}

type service struct {
	log   logging.Logger
	timer trigger.Timer
}

func New(
	log logging.Logger,
	timer trigger.Timer,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if timer == nil {
		panic(e.NewNilArgumentError("timer"))
	}
	return &service{log: log, timer: timer}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	key := trigger.KeyForEventID(input.EventID)
	if err := s.timer.Cancel(ctx, key); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Reminder canceled.", logging.Entry("key", key))
	return result, nil
}
