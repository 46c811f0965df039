package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Forwarder republishes changes to a topic exchange with routing key "<kind>.<action>".
type Forwarder struct {
	conn     *amqp091.Connection
	channel  publisher
	exchange string
	logger   *logrus.Logger
}

// DialForwarder connects to the broker at url and declares the exchange.
func DialForwarder(url, exchange string, logger *logrus.Logger) (*Forwarder, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	f := NewForwarder(channel, exchange, logger)
	f.conn = conn
	return f, nil
}

func NewForwarder(channel publisher, exchange string, logger *logrus.Logger) *Forwarder {
	return &Forwarder{channel: channel, exchange: exchange, logger: logger}
}

// Run forwards changes from sub until ctx is done or sub is closed.
// Publish failures are logged and the change is dropped.
func (f *Forwarder) Run(ctx context.Context, sub *Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-sub.C:
			if !ok {
				return
			}
			if err := f.forward(ctx, change); err != nil {
				f.logger.WithError(err).WithField("kind", change.Kind).Error("Forwarder.Run.PublishError")
			}
		}
	}
}

func (f *Forwarder) forward(ctx context.Context, change Change) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return f.channel.PublishWithContext(
		ctx,
		f.exchange,
		RoutingKey(change),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    change.At,
			Body:         body,
		},
	)
}

func RoutingKey(change Change) string {
	return string(change.Kind) + "." + string(change.Action)
}

func (f *Forwarder) Close() error {
	if f.conn != nil {
		return f.conn.Close()
	}
	return nil
}
