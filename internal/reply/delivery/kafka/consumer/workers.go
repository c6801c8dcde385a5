package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/reply"
	kafkaDelivery "comment-srv/internal/reply/delivery/kafka"
	"comment-srv/pkg/scope"

	"github.com/IBM/sarama"
)

// handleReplyDispatchMessage decodes the message and hands it to the usecase.
// Malformed messages and deliveries for deleted comments are skipped.
func (c *consumer) handleReplyDispatchMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "reply.delivery.kafka.consumer.handleReplyDispatchMessage: partition %d, offset %d", msg.Partition, msg.Offset)

	var message kafkaDelivery.ReplyDispatchMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "reply.delivery.kafka.consumer.handleReplyDispatchMessage: invalid message format (skipping): %v", err)
		return nil
	}

	ctx = scope.SetScopeToContext(ctx, model.SystemScope())

	err := c.uc.Deliver(ctx, toDeliverInput(message))
	if errors.Is(err, reply.ErrInvalidDelivery) {
		c.l.Warnf(ctx, "reply.delivery.kafka.consumer.handleReplyDispatchMessage: skipping reply %s: %v", message.ReplyID, err)
		return nil
	}
	if err != nil {
		c.l.Errorf(ctx, "reply.delivery.kafka.consumer.handleReplyDispatchMessage: usecase Deliver failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "reply.delivery.kafka.consumer.handleReplyDispatchMessage: recorded reply %s on comment %s", message.ReplyID, message.CommentID)
	return nil
}
