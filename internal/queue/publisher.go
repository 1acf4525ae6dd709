package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ReservationQueue is the durable queue reservation events are routed to.
const ReservationQueue = "reservation.events"

// Publisher publishes reservation events to RabbitMQ.  Each publish
// opens its own connection so a broker outage never leaves the server
// holding a dead channel.
type Publisher struct {
	url    string
	log    *zap.Logger
	dialer func(ctx context.Context, url string) (*amqp.Connection, error)
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url string, log *zap.Logger) *Publisher {
	return &Publisher{url: url, log: log, dialer: dial}
}

// Publish sends ev to the reservation queue as a persistent JSON
// message.  Errors are logged and returned so the caller can choose to
// ignore them.
func (p *Publisher) Publish(ctx context.Context, ev ReservationEvent) error {
	conn, err := p.dialer(ctx, p.url)
	if err != nil {
		p.log.Warn("rabbitmq dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if err := declare(ch); err != nil {
		p.log.Warn("rabbitmq queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID,
		Type:         ev.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	// default exchange, routing key = queue name
	if err := ch.PublishWithContext(ctx, "", ReservationQueue, false, false, pub); err != nil {
		p.log.Warn("rabbitmq publish failed", zap.String("event", ev.Type), zap.Error(err))
		return err
	}
	return nil
}

// declare ensures the queue exists.  Durable so messages survive broker restarts.
func declare(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(ReservationQueue, true, false, false, false, nil)
	return err
}
