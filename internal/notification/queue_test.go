package notification

import (
	"context"
	"testing"
	"time"

	"comment-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestQueueExpiry(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	sc := model.Scope{UserID: "u-1"}
	q := NewQueue(40 * time.Millisecond)
	defer q.Close()

	_, err := q.Push(ctx, sc, PushInput{Title: "Comment archived"})
	require.NoError(t, err)
	_, err = q.Push(ctx, sc, PushInput{Title: "Comment archived"})
	require.NoError(t, err)

	got, _ := q.List(ctx, sc)
	assert.Len(t, got, 2, "identical toasts queue independently")

	assert.Eventually(t, func() bool {
		got, _ := q.List(ctx, sc)
		return len(got) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestQueueDismiss(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	sc := model.Scope{UserID: "u-1"}
	q := NewQueue(time.Minute)
	defer q.Close()

	a, _ := q.Push(ctx, sc, PushInput{Title: "a"})
	b, _ := q.Push(ctx, sc, PushInput{Title: "b", Variant: model.ToastDestructive})

	require.NoError(t, q.Dismiss(ctx, sc, a.ID))
	require.NoError(t, q.Dismiss(ctx, sc, "missing"))

	got, _ := q.List(ctx, sc)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestQueueClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	sc := model.Scope{UserID: "u-1"}
	q := NewQueue(time.Hour)
	_, _ = q.Push(ctx, sc, PushInput{Title: "a"})
	q.Close()

	got, _ := q.List(ctx, sc)
	assert.Empty(t, got)

	_, err := q.Push(ctx, sc, PushInput{Title: "after close"})
	assert.NoError(t, err)
	got, _ = q.List(ctx, sc)
	assert.Empty(t, got)
}

func TestNewToast(t *testing.T) {
	now := time.Now()
	tt, err := NewToast("u-1", PushInput{Title: "t"}, now, DefaultTTL)
	require.NoError(t, err)
	assert.Equal(t, model.ToastDefault, tt.Variant)
	assert.Equal(t, now.Add(3*time.Second), tt.ExpiresAt)
	assert.Regexp(t, `^[0-9a-z]{7}$`, tt.ID)
}
