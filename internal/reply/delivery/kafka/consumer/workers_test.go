package consumer

import (
	"context"
	"errors"
	"testing"

	"comment-srv/internal/reply"
	"comment-srv/internal/reply/mocks"
	"comment-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestConsumer(t *testing.T) (*consumer, *mocks.UseCase) {
	uc := mocks.NewUseCase(t)
	return &consumer{l: log.NewNop(), uc: uc}, uc
}

func TestHandleReplyDispatchMessage(t *testing.T) {
	ctx := context.Background()
	body := []byte(`{"reply_id":"r-1","comment_id":"c-1","user_id":"u-1","text":"Thanks!","author_name":"Ana","is_ai_generated":true}`)

	t.Run("delivers", func(t *testing.T) {
		c, uc := newTestConsumer(t)
		uc.On("Deliver", mock.Anything, mock.MatchedBy(func(in reply.DeliverInput) bool {
			return in.ReplyID == "r-1" && in.CommentID == "c-1" && in.UserID == "u-1" && in.IsAIGenerated
		})).Return(nil)

		assert.NoError(t, c.handleReplyDispatchMessage(ctx, &sarama.ConsumerMessage{Value: body}))
	})

	t.Run("malformed is skipped", func(t *testing.T) {
		c, _ := newTestConsumer(t)
		assert.NoError(t, c.handleReplyDispatchMessage(ctx, &sarama.ConsumerMessage{Value: []byte("{")}))
	})

	t.Run("invalid delivery is skipped", func(t *testing.T) {
		c, uc := newTestConsumer(t)
		uc.On("Deliver", mock.Anything, mock.Anything).Return(reply.ErrInvalidDelivery)
		assert.NoError(t, c.handleReplyDispatchMessage(ctx, &sarama.ConsumerMessage{Value: body}))
	})

	t.Run("store failure is reported", func(t *testing.T) {
		c, uc := newTestConsumer(t)
		uc.On("Deliver", mock.Anything, mock.Anything).Return(errors.New("reply: store unavailable"))
		assert.Error(t, c.handleReplyDispatchMessage(ctx, &sarama.ConsumerMessage{Value: body}))
	})
}

func TestNewValidates(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
