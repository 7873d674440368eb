package triggerdispatcher

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"eventcal/internal/rabbitmq"
	"eventcal/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ hands fired triggers over to the notification consumers. The
// scheduler publishes a trigger only once it is already due, so no broker
// side delay is involved.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (d *RabbitMQ) DispatchTrigger(ctx context.Context, t trigger.Trigger) error {
	fired := schema.FiredTrigger{Key: string(t.Key), FireAt: t.FireAt, Payload: t.Payload}
	body, err := fired.Marshal()
	if err != nil {
		logging.Error(ctx, d.log, err, logging.Entry("trigger", t))
		return err
	}
	err = d.channel.PublishWithContext(ctx, d.exchange, d.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, d.log, err)
		return err
	}
	d.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", d.exchange),
		logging.Entry("RK", d.routingKey),
		logging.Entry("triggerKey", t.Key),
	)
	return nil
}
