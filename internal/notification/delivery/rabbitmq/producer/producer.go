package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"comment-srv/internal/notification"
	"comment-srv/pkg/rabbitmq"
)

// PublishEvent sends the event with the user id as routing key.
func (p *implProducer) PublishEvent(ctx context.Context, event notification.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal toast event: %w", err)
	}

	if err := p.ch.Publish(ctx, rabbitmq.PublishArgs{
		Exchange:   notification.ExchangeName,
		RoutingKey: event.Toast.UserID,
		Msg: rabbitmq.Publishing{
			ContentType: rabbitmq.ContentTypeJSON,
			MessageId:   event.Toast.ID,
			Type:        event.Type,
			Body:        body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish toast event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s for toast %s", event.Type, event.Toast.ID)
	return nil
}
