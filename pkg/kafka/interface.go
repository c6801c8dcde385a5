package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	// Publish sends msgs in one batch; either all are acknowledged or an error is returned.
	Publish(ctx context.Context, msgs ...Message) error
	Close() error
	HealthCheck() error
}

// IConsumer is a consumer group member.
type IConsumer interface {
	// Consume blocks, rejoining the group after each rebalance, until ctx is cancelled or the group is closed.
	Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Close() error
	Errors() <-chan error
}

func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}
