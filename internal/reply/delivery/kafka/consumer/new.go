package consumer

import (
	"context"
	"fmt"

	"comment-srv/config"
	"comment-srv/internal/reply"
	kafkaDelivery "comment-srv/internal/reply/delivery/kafka"
	pkgKafka "comment-srv/pkg/kafka"
	"comment-srv/pkg/log"
)

// Consumer - Reply dispatch consumer group
type Consumer interface {
	ConsumeReplyDispatch(ctx context.Context) error
	Close() error
}

// Config holds the configuration for the reply consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     reply.UseCase
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          reply.UseCase

	replyDispatchGroup pkgKafka.IConsumer
}

// New creates a new reply consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.KafkaConfig.ReplyTopic == "" {
		cfg.KafkaConfig.ReplyTopic = kafkaDelivery.TopicReplyDispatch
	}
	if cfg.KafkaConfig.ConsumerGroup == "" {
		cfg.KafkaConfig.ConsumerGroup = kafkaDelivery.ConsumerGroupReplyDispatch
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *consumer) Close() error {
	if c.replyDispatchGroup != nil {
		if err := c.replyDispatchGroup.Close(); err != nil {
			return fmt.Errorf("failed to close reply dispatch group: %w", err)
		}
	}
	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateConsumerGroupFailed, groupID, err)
	}
	return group, nil
}
