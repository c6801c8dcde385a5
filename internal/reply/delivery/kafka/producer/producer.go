package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"comment-srv/internal/reply"
	kafkaDelivery "comment-srv/internal/reply/delivery/kafka"
	pkgKafka "comment-srv/pkg/kafka"
)

// PublishDispatch publishes one reply keyed by comment id, so retries for a comment stay ordered.
func (p *implProducer) PublishDispatch(ctx context.Context, d reply.Dispatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := kafkaDelivery.ReplyDispatchMessage{
		ReplyID:       d.ReplyID,
		CommentID:     d.CommentID,
		UserID:        d.UserID,
		Text:          d.Text,
		AuthorName:    d.AuthorName,
		AuthorAvatar:  d.AuthorAvatar,
		IsAIGenerated: d.IsAIGenerated,
		SentAt:        d.SentAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal reply dispatch: %w", err)
	}

	err = p.producer.Publish(ctx, pkgKafka.Message{
		Key:     []byte(d.CommentID),
		Value:   body,
		Headers: map[string]string{pkgKafka.HeaderEventType: kafkaDelivery.EventReplyDispatch},
	})
	if err != nil {
		return fmt.Errorf("failed to publish reply dispatch: %w", err)
	}

	p.l.Debugf(ctx, "reply.delivery.kafka.producer.PublishDispatch: published reply %s for comment %s", d.ReplyID, d.CommentID)
	return nil
}
