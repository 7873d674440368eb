package consumers

import (
	"context"
	"eventcal/internal/app/deps"
	"eventcal/internal/app/services"
	dl "eventcal/internal/core/domain/logging"
	triggerfired "eventcal/internal/rabbitmq/consumers/trigger_fired"
)

func initTriggerFiredConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqTriggerFiredQueue
	triggerFiredConsumer := triggerfired.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.DispatchNotification,
	)
	if err = triggerFiredConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	shutdownTriggerFiredConsumer := initTriggerFiredConsumer(deps, services)

	return func() {
		shutdownTriggerFiredConsumer()
	}
}
