package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var (
	errNoBrokers = errors.New("kafka: at least one broker is required")
	errNoTopic   = errors.New("kafka: topic is required")
	errNoGroup   = errors.New("kafka: group id is required")
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return errNoBrokers
	}
	if cfg.Topic == "" {
		return errNoTopic
	}
	return nil
}

func validateConsumerConfig(cfg ConsumerConfig) error {
	if len(cfg.Brokers) == 0 {
		return errNoBrokers
	}
	if cfg.GroupID == "" {
		return errNoGroup
	}
	return nil
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	sc := sarama.NewConfig()
	sc.Version = kafkaVersion
	// Replies must not be lost once the user saw "sent".
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Idempotent = true
	sc.Net.MaxOpenRequests = 1
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = producerRetryMax
	sc.Producer.Timeout = producerTimeout

	sp, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka: new producer: %w", err)
	}
	return &producerImpl{producer: sp, topic: cfg.Topic}, nil
}

func (p *producerImpl) toSarama(m Message) *sarama.ProducerMessage {
	pm := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.ByteEncoder(m.Value)}
	if m.Key != nil {
		pm.Key = sarama.ByteEncoder(m.Key)
	}
	for k, v := range m.Headers {
		pm.Headers = append(pm.Headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	return pm
}

func (p *producerImpl) Publish(ctx context.Context, msgs ...Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch len(msgs) {
	case 0:
		return nil
	case 1:
		if _, _, err := p.producer.SendMessage(p.toSarama(msgs[0])); err != nil {
			return fmt.Errorf("kafka: publish: %w", err)
		}
		return nil
	}

	batch := make([]*sarama.ProducerMessage, 0, len(msgs))
	for _, m := range msgs {
		batch = append(batch, p.toSarama(m))
	}
	if err := p.producer.SendMessages(batch); err != nil {
		var perrs sarama.ProducerErrors
		if errors.As(err, &perrs) && len(perrs) > 0 {
			return fmt.Errorf("kafka: publish batch: %d of %d failed: %w", len(perrs), len(msgs), perrs[0].Err)
		}
		return fmt.Errorf("kafka: publish batch: %w", err)
	}
	return nil
}

func (p *producerImpl) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return errors.New("kafka: producer is not initialized")
	}
	return nil
}

func newConsumerImpl(cfg ConsumerConfig) (*consumerImpl, error) {
	sc := sarama.NewConfig()
	sc.Version = kafkaVersion
	sc.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategySticky()}
	sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	sc.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka: new consumer group: %w", err)
	}
	return &consumerImpl{group: group}, nil
}

func (c *consumerImpl) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *consumerImpl) Close() error {
	return c.group.Close()
}

func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}
