package queue

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// defaultDialTimeout bounds the TCP connect and AMQP handshake when ctx
// carries no deadline.
const defaultDialTimeout = 5 * time.Second

// dialTimeout is the time left on ctx, or defaultDialTimeout when ctx has
// no deadline.  A done ctx yields its error.
func dialTimeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return defaultDialTimeout, nil
	}
	left := time.Until(deadline)
	if left <= 0 {
		return 0, context.DeadlineExceeded
	}
	return left, nil
}

// dial opens a broker connection that gives up once ctx's deadline
// passes.
func dial(ctx context.Context, url string) (*amqp.Connection, error) {
	timeout, err := dialTimeout(ctx)
	if err != nil {
		return nil, err
	}
	return amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
}
