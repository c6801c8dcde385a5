package kafka

import "github.com/IBM/sarama"

// Config configures a producer bound to Topic.
type Config struct {
	Brokers []string
	Topic   string
}

// Message is one record. Key picks the partition, so records sharing a key stay ordered.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

type consumerImpl struct {
	group sarama.ConsumerGroup
}
