package services

import (
	"eventcal/internal/app/deps"
	"eventcal/internal/core/services"
	cancelreminder "eventcal/internal/core/services/cancel_reminder"
	createevent "eventcal/internal/core/services/create_event"
	dispatchnotification "eventcal/internal/core/services/dispatch_notification"
	fireduetriggers "eventcal/internal/core/services/fire_due_triggers"
	listeventsbydate "eventcal/internal/core/services/list_events_by_date"
	schedulereminder "eventcal/internal/core/services/schedule_reminder"
)

type Services struct {
	CreateEvent      services.Service[createevent.Input, createevent.Result]
	ListEventsByDate services.Service[listeventsbydate.Input, listeventsbydate.Result]

	ScheduleReminder     services.Service[schedulereminder.Input, schedulereminder.Result]
	CancelReminder       services.Service[cancelreminder.Input, cancelreminder.Result]
	FireDueTriggers      services.Service[fireduetriggers.Input, fireduetriggers.Result]
	DispatchNotification services.Service[dispatchnotification.Input, dispatchnotification.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateEvent = createevent.New(
		deps.Logger,
		deps.EventRepository,
		deps.EventPublisher,
		deps.EventIdentityGenerator,
		deps.Now,
	)
	s.ListEventsByDate = listeventsbydate.New(
		deps.Logger,
		deps.EventRepository,
	)
	s.ScheduleReminder = schedulereminder.New(
		deps.Logger,
		deps.EventRepository,
		deps.TriggerStore,
		deps.Now,
	)
	s.CancelReminder = cancelreminder.New(
		deps.Logger,
		deps.TriggerStore,
	)
	s.FireDueTriggers = fireduetriggers.New(
		deps.Logger,
		deps.TriggerStore,
		deps.TriggerDispatcher,
		deps.Config.TriggerPollBatchSize,
		deps.Now,
	)
	s.DispatchNotification = dispatchnotification.New(
		deps.Logger,
		deps.Notifier,
	)

	return s
}
