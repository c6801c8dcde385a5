package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

// Channel opens a channel that follows the connection across reconnects.
func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.rawChannel()
	if err != nil {
		return nil, err
	}
	impl := &channelImpl{ch: ch}

	c.mu.Lock()
	c.channels = append(c.channels, impl)
	c.mu.Unlock()
	return impl, nil
}

func (c *connectionImpl) rawChannel() (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return nil, amqp.ErrClosed
	}
	return conn.Channel()
}

// dial retries until it gets a connection or stop is closed.
func (c *connectionImpl) dial(out chan<- *amqp.Connection, stop <-chan struct{}) {
	ctx := context.Background()
	for attempt := 1; ; attempt++ {
		select {
		case <-stop:
			return
		default:
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.l.Warnf(ctx, "pkg.rabbitmq.dial: attempt %d: %v", attempt, err)
			select {
			case <-stop:
				return
			case <-time.After(RetryConnectionDelay):
			}
			continue
		}

		select {
		case out <- conn:
			c.l.Infof(ctx, "pkg.rabbitmq.dial: connected after %d attempt(s)", attempt)
		case <-stop:
			_ = conn.Close()
		}
		return
	}
}

func (c *connectionImpl) connect() error {
	out := make(chan *amqp.Connection)
	stop := make(chan struct{})
	go c.dial(out, stop)

	var timeout <-chan time.Time
	if !c.retryWithoutTimeout {
		timeout = time.After(RetryConnectionTimeout)
	}

	select {
	case conn := <-out:
		c.setConn(conn)
		return nil
	case <-timeout:
		close(stop)
		return ErrConnectionTimeout
	}
}

func (c *connectionImpl) setConn(conn *amqp.Connection) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.watch(conn)
}

// watch redials once conn drops and then rebinds every open channel.
func (c *connectionImpl) watch(conn *amqp.Connection) {
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		ctx := context.Background()
		amqpErr, ok := <-closed
		if !ok || amqpErr == nil {
			return
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.conn = nil
		c.mu.Unlock()

		c.l.Warnf(ctx, "pkg.rabbitmq.watch: connection lost: %v", amqpErr)
		if err := c.connect(); err != nil {
			c.l.Errorf(ctx, "pkg.rabbitmq.watch: reconnect failed: %v", err)
			return
		}
		c.rebindChannels(ctx)
	}()
}

func (c *connectionImpl) rebindChannels(ctx context.Context) {
	c.mu.RLock()
	channels := append([]*channelImpl(nil), c.channels...)
	c.mu.RUnlock()

	for _, impl := range channels {
		ch, err := c.rawChannel()
		if err != nil {
			c.l.Errorf(ctx, "pkg.rabbitmq.rebindChannels: %v", err)
			return
		}
		impl.swap(ch)
	}
}

func (ch *channelImpl) swap(next *amqp.Channel) {
	ch.mu.Lock()
	prev := ch.ch
	ch.ch = next
	ch.mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
}

func (ch *channelImpl) current() (*amqp.Channel, error) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	if ch.ch == nil || ch.ch.IsClosed() {
		return nil, amqp.ErrClosed
	}
	return ch.ch, nil
}

func (ch *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.ExchangeDeclare(exc.spread())
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.PublishWithContext(publish.spread(ctx))
}

func (ch *channelImpl) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.ch == nil {
		return nil
	}
	err := ch.ch.Close()
	ch.ch = nil
	return err
}
