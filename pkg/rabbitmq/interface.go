package rabbitmq

import (
	"context"

	"comment-srv/pkg/log"
)

// IRabbitMQ is a self-healing connection: when the broker drops it, it redials
// in the background and every channel opened from it is swapped transparently.
type IRabbitMQ interface {
	Close()
	IsReady() bool
	Channel() (IChannel, error)
}

// IChannel publishes on a connection-owned channel. Implementations are safe for concurrent use.
type IChannel interface {
	ExchangeDeclare(exc ExchangeArgs) error
	Publish(ctx context.Context, publish PublishArgs) error
	Close() error
}

// NewRabbitMQ dials url. With retryWithoutTimeout, reconnects after a drop
// never give up; otherwise each attempt is bounded by RetryConnectionTimeout.
func NewRabbitMQ(l log.Logger, url string, retryWithoutTimeout bool) (IRabbitMQ, error) {
	conn := &connectionImpl{
		l:                   l,
		url:                 url,
		retryWithoutTimeout: retryWithoutTimeout,
	}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
