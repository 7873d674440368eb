package dispatchnotification

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/core/services"
)

const (
	notificationTitle      = "Event Reminder"
	notificationBodyPrefix = "You have an upcoming event: "
)

type Input struct {
	Key     trigger.Key
	Payload string
}

type Result struct{}

type service struct {
	log      logging.Logger
	notifier trigger.Notifier
}

func New(
	log logging.Logger,
	notifier trigger.Notifier,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{log: log, notifier: notifier}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.notifier.Show(ctx, notificationTitle, notificationBodyPrefix+input.Payload)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Notification shown.", logging.Entry("key", input.Key))
	return result, nil
}
