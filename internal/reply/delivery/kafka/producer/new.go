package producer

import (
	"comment-srv/internal/reply"
	pkgKafka "comment-srv/pkg/kafka"
	"comment-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates the reply dispatch producer. The pkg producer must target TopicReplyDispatch.
func New(l log.Logger, producer pkgKafka.IProducer) reply.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
