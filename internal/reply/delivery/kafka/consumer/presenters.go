package consumer

import (
	"comment-srv/internal/reply"
	kafkaDelivery "comment-srv/internal/reply/delivery/kafka"
)

func toDeliverInput(m kafkaDelivery.ReplyDispatchMessage) reply.DeliverInput {
	return reply.DeliverInput{Dispatch: reply.Dispatch{
		ReplyID:       m.ReplyID,
		CommentID:     m.CommentID,
		UserID:        m.UserID,
		Text:          m.Text,
		AuthorName:    m.AuthorName,
		AuthorAvatar:  m.AuthorAvatar,
		IsAIGenerated: m.IsAIGenerated,
		SentAt:        m.SentAt,
	}}
}
