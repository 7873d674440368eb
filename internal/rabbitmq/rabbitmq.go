package rabbitmq

import (
	"context"
	"eventcal/internal/core/domain/logging"
	"fmt"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection wraps amqp.Connection and redials in the background when the
// broker drops it. Channels obtained through it resubscribe on their own.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{Connection: conn, log: log}
	go connection.supervise(url)
	return connection, nil
}

// supervise redials after every broker-side close. A close without a reason
// means Close was called and the goroutine exits.
func (c *Connection) supervise(url string) {
	for {
		reason, ok := <-c.Connection.NotifyClose(make(chan *amqp.Error))
		if !ok {
			c.log.Info(context.Background(), "RabbitMQ connection closed.")
			return
		}
		c.log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", *reason))

		for {
			time.Sleep(reconnectDelay)

			conn, err := amqp.Dial(url)
			if err != nil {
				c.log.Error(context.Background(), "RabbitMQ redial failed.", logging.Entry("err", err))
				continue
			}
			c.Connection = conn
			c.log.Info(context.Background(), "RabbitMQ connection restored.")
			break
		}
	}
}

// Channel returns a channel that transparently recreates itself after a
// broker-side close.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{Channel: ch, log: c.log}
	go channel.supervise(c)
	return channel, nil
}

// Channel wraps amqp.Channel with recreation on broker-side close.
type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

func (ch *Channel) supervise(c *Connection) {
	for {
		reason, ok := <-ch.Channel.NotifyClose(make(chan *amqp.Error))
		if !ok || ch.IsClosed() {
			// Closed on our side; set the flag in case the connection went first.
			ch.Close()
			return
		}
		ch.log.Warning(context.Background(), "RabbitMQ channel lost.", logging.Entry("reason", *reason))

		for {
			time.Sleep(reconnectDelay)

			recreated, err := c.Connection.Channel()
			if err != nil {
				ch.log.Error(context.Background(), "Channel recreate failed.", logging.Entry("err", err))
				continue
			}
			ch.Channel = recreated
			ch.log.Info(context.Background(), "Channel recreated.")
			break
		}
	}
}

// IsClosed reports whether Close was called on this wrapper, as opposed to
// the broker dropping the underlying channel.
func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if ch.IsClosed() {
		return amqp.ErrClosed
	}
	atomic.StoreInt32(&ch.closed, 1)
	return ch.Channel.Close()
}

// Consume delivers from the queue across channel recreations. The returned
// stream ends only after Close is called on the channel wrapper.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		for {
			d, err := ch.Channel.Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				ch.log.Error(context.Background(), "Consume failed.", logging.Entry("err", err))
				time.Sleep(reconnectDelay)
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// Give supervise time to swap in the recreated channel before
			// the IsClosed check decides whether this was a shutdown.
			time.Sleep(reconnectDelay)

			if ch.IsClosed() {
				ch.log.Info(context.Background(), "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries, nil
}
