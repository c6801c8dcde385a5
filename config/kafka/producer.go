package kafka

import (
	"fmt"
	"sync"

	"comment-srv/config"
	"comment-srv/pkg/kafka"
)

var (
	producer   kafka.IProducer
	producerMu sync.Mutex
)

// ConnectProducer returns the process-wide reply dispatch producer, creating it on first use.
// A failed attempt leaves nothing cached, so the next call dials again.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer != nil {
		return producer, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.ReplyTopic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect reply dispatch producer to %v: %w", cfg.Brokers, err)
	}
	producer = p
	return producer, nil
}

// DisconnectProducer flushes and closes the producer. Calling it twice is a no-op.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
