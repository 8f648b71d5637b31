package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitContactMessage(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContactService{Store: st}

	t.Run("stores a trimmed, lowercased message", func(t *testing.T) {
		msg, err := svc.Submit(ctx, "  Visitor ", " Visitor@Example.COM ", "  Hello there  ")
		require.NoError(t, err)
		require.Equal(t, "Visitor", msg.Name)
		require.Equal(t, "visitor@example.com", msg.Email)
		require.Equal(t, "Hello there", msg.Message)

		msgs, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Submit(ctx, "", "a@b.com", "hi")
		require.ErrorIs(t, err, ErrInvalidContactMessage)

		_, err = svc.Submit(ctx, "Visitor", "not-an-email", "hi")
		require.ErrorIs(t, err, ErrInvalidContactMessage)

		_, err = svc.Submit(ctx, "Visitor", "a@b.com", "")
		require.ErrorIs(t, err, ErrInvalidContactMessage)
	})

	t.Run("rejects oversized messages", func(t *testing.T) {
		_, err := svc.Submit(ctx, "Visitor", "a@b.com", strings.Repeat("x", maxContactMessageLen+1))
		require.ErrorIs(t, err, ErrInvalidContactMessage)
	})
}
