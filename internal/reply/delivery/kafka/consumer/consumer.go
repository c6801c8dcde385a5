package consumer

import (
	"context"
)

// ConsumeReplyDispatch joins the dispatch group and records every reply in its thread.
func (c *consumer) ConsumeReplyDispatch(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.kafkaConfig.ConsumerGroup)
	if err != nil {
		return err
	}
	c.replyDispatchGroup = group

	handler := &replyDispatchHandler{consumer: c}
	topic := c.kafkaConfig.ReplyTopic

	go func() {
		if err := group.Consume(ctx, []string{topic}, handler); err != nil {
			c.l.Errorf(ctx, "reply.delivery.kafka.consumer.ConsumeReplyDispatch: consume error: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "reply.delivery.kafka.consumer.ConsumeReplyDispatch: group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)
	return nil
}
