package producer

import (
	"comment-srv/internal/notification"
	"comment-srv/pkg/log"
	"comment-srv/pkg/rabbitmq"
)

type implProducer struct {
	l  log.Logger
	ch rabbitmq.IChannel
}

// New declares the toast fanout exchange and returns a Publisher bound to it.
func New(l log.Logger, conn rabbitmq.IRabbitMQ) (notification.Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    notification.ExchangeName,
		Type:    rabbitmq.ExchangeTypeFanout,
		Durable: true,
	}); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return &implProducer{l: l, ch: ch}, nil
}
