package fireduetriggers

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	DispatchedCount uint
}

type service struct {
	log        logging.Logger
	store      trigger.Store
	dispatcher trigger.Dispatcher
	batchSize  uint
	now        func() time.Time
}

func New(
	log logging.Logger,
	store trigger.Store,
	dispatcher trigger.Dispatcher,
	batchSize uint,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	if batchSize == 0 {
		panic("batchSize must be positive")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		store:      store,
		dispatcher: dispatcher,
		batchSize:  batchSize,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	dueTriggers, err := s.store.Due(ctx, s.now(), s.batchSize)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	if len(dueTriggers) == 0 {
		return result, nil
	}

	s.log.Info(ctx, "Got due triggers.", logging.Entry("count", len(dueTriggers)))
	for _, t := range dueTriggers {
		if err := s.dispatcher.DispatchTrigger(ctx, t); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("trigger", t))
			s.rearm(ctx, t)
			continue
		}
		result.DispatchedCount++
	}

	s.log.Info(
		ctx,
		"Due triggers dispatched.",
		logging.Entry("dispatchedCount", result.DispatchedCount),
	)
	return result, nil
}

// rearm puts a trigger the dispatcher rejected back into the store, so it is
// retried on the next tick instead of being lost. ArmIfAbsent keeps a newer
// arm made under the same key since the drain, the stale trigger loses.
func (s *service) rearm(ctx context.Context, t trigger.Trigger) {
	if err := s.store.ArmIfAbsent(ctx, t); err != nil {
		s.log.Error(
			ctx,
			"Could not re-arm trigger after dispatch failure.",
			logging.Entry("err", err),
			logging.Entry("trigger", t),
		)
	}
}
