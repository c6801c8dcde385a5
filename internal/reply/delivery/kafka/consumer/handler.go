package consumer

import (
	"github.com/IBM/sarama"
)

type replyDispatchHandler struct {
	consumer *consumer
}

func (h *replyDispatchHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *replyDispatchHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *replyDispatchHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleReplyDispatchMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(session.Context(), "reply.delivery.kafka.consumer.ConsumeClaim: failed to process message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
