package triggerfired

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/core/services"
	dispatchnotification "eventcal/internal/core/services/dispatch_notification"
	"eventcal/internal/rabbitmq"
	"eventcal/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[dispatchnotification.Input, dispatchnotification.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[dispatchnotification.Input, dispatchnotification.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start cosuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			fired := &schema.FiredTrigger{}
			if err := fired.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal fired trigger.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got fired trigger.",
				logging.Entry("trigger", fired),
			)
			_, err := c.service.Run(
				context.Background(),
				dispatchnotification.Input{Key: trigger.Key(fired.Key), Payload: fired.Payload},
			)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not show notification, service returned an error.",
					logging.Entry("trigger", fired),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
