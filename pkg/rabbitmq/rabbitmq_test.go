package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsSpread(t *testing.T) {
	name, kind, durable, autoDelete, internal, noWait, _ := ExchangeArgs{
		Name: "notification.toast", Type: ExchangeTypeFanout, Durable: true,
	}.spread()
	assert.Equal(t, "notification.toast", name)
	assert.Equal(t, ExchangeTypeFanout, kind)
	assert.True(t, durable)
	assert.False(t, autoDelete || internal || noWait)

	ctx := context.Background()
	_, ex, rk, mandatory, immediate, msg := PublishArgs{
		Exchange: "x", RoutingKey: "rk",
		Msg: Publishing{ContentType: ContentTypeJSON, Body: []byte("{}")},
	}.spread(ctx)
	assert.Equal(t, "x", ex)
	assert.Equal(t, "rk", rk)
	assert.False(t, mandatory || immediate)
	assert.Equal(t, ContentTypeJSON, msg.ContentType)
}

func TestChannelWithoutConnection(t *testing.T) {
	c := &connectionImpl{}
	_, err := c.Channel()
	assert.ErrorIs(t, err, amqp.ErrClosed)
	assert.False(t, c.IsReady())

	c.Close()
	assert.True(t, c.closed)
}

func TestClosedChannel(t *testing.T) {
	ch := &channelImpl{}
	assert.ErrorIs(t, ch.Publish(context.Background(), PublishArgs{}), amqp.ErrClosed)
	assert.ErrorIs(t, ch.ExchangeDeclare(ExchangeArgs{Name: "x"}), amqp.ErrClosed)
	require.NoError(t, ch.Close())
}
