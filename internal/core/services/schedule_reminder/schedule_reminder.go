package schedulereminder

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/core/services"
	"fmt"
	"time"
)

type Input struct {
	EventID  event.ID
	LeadTime trigger.LeadTime
}

type Result struct {
	Trigger trigger.Trigger
}

type service struct {
	log             logging.Logger
	eventRepository event.Repository
	timer           trigger.Timer
	now             func() time.Time
}

func New(
	log logging.Logger,
	eventRepository event.Repository,
	timer trigger.Timer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	if timer == nil {
		panic(e.NewNilArgumentError("timer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		eventRepository: eventRepository,
		timer:           timer,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	ev, err := s.eventRepository.GetByID(ctx, input.EventID)
	if err != nil {
		return result, err
	}

	t := trigger.Trigger{
		Key:     trigger.KeyForEvent(ev),
		FireAt:  input.LeadTime.Resolve(ev.StartTime),
		Payload: ev.Title,
	}
	if t.FireAt.Before(s.now()) {
		// Not an error: the scheduler drains past-due triggers on its next
		// tick, so this degrades to "fire immediately".
		s.log.Warning(
			ctx,
			"Reminder fire time is in the past.",
			logging.Entry("key", t.Key),
			logging.Entry("fireAt", t.FireAt),
		)
	}

	if err := s.timer.Arm(ctx, t); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input), logging.Entry("trigger", t))
		return result, fmt.Errorf("%w: %v", trigger.ErrSchedulingFailed, err)
	}

	s.log.Info(
		ctx,
		"Reminder successfully scheduled.",
		logging.Entry("key", t.Key),
		logging.Entry("fireAt", t.FireAt),
		logging.Entry("leadTime", input.LeadTime.String()),
	)
	result.Trigger = t
	return result, nil
}
