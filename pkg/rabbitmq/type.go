package rabbitmq

import (
	"context"
	"sync"

	"comment-srv/pkg/log"

	amqp "github.com/rabbitmq/amqp091-go"
)

type connectionImpl struct {
	mu                  sync.RWMutex
	l                   log.Logger
	url                 string
	retryWithoutTimeout bool
	conn                *amqp.Connection
	closed              bool
	channels            []*channelImpl
}

type channelImpl struct {
	mu sync.RWMutex
	ch *amqp.Channel
}

type ExchangeArgs struct {
	Name       string
	Type       string
	Durable    bool
	AutoDelete bool
	Args       map[string]any
}

func (e ExchangeArgs) spread() (name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) {
	return e.Name, e.Type, e.Durable, e.AutoDelete, false, false, e.Args
}

// Publishing is the message body and properties.
type Publishing = amqp.Publishing

type PublishArgs struct {
	Exchange   string
	RoutingKey string
	Msg        Publishing
}

func (p PublishArgs) spread(ctx context.Context) (c context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) {
	return ctx, p.Exchange, p.RoutingKey, false, false, p.Msg
}
