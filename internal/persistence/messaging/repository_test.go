package messaging_test

import (
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"marketloop/internal/config"
	"marketloop/internal/core"
	"marketloop/internal/keyvalue"
	"marketloop/internal/persistence/messaging"
)

func newRepository(t *testing.T) (*messaging.Repository, *keyvalue.Store) {
	t.Helper()

	store := &keyvalue.Store{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{MemoryStore: true},
	}
	require.NoError(t, store.Init(t.Context()))

	repo := &messaging.Repository{Logger: slog.New(slog.DiscardHandler), KV: store}
	require.NoError(t, repo.Init(t.Context()))
	return repo, store
}

func TestRepository_SendMessage(t *testing.T) {
	t.Parallel()

	t.Run("attributes the current user and appends to the thread", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepository(t)

		existing, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)

		sent, err := repo.SendMessage(t.Context(), core.SendMessageRequest{Content: "hi", ReceiverID: "u1"})
		require.NoError(t, err)
		require.Equal(t, core.CurrentUserID, sent.SenderID)
		require.Equal(t, "u1", sent.ReceiverID)
		require.False(t, sent.IsRead)
		require.NotEmpty(t, sent.ID)

		messages, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)
		require.Len(t, messages, len(existing)+1)
		stored := messages[len(messages)-1]
		// The JSON round trip strips the monotonic clock reading and stores
		// the timestamp in UTC, so compare instants rather than representations.
		require.True(t, sent.Timestamp.Equal(stored.Timestamp))
		stored.Timestamp = sent.Timestamp
		require.Equal(t, *sent, stored)
	})

	t.Run("does not touch the conversation summary", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepository(t)

		before, err := repo.Conversations(t.Context())
		require.NoError(t, err)

		_, err = repo.SendMessage(t.Context(), core.SendMessageRequest{Content: "ping", ReceiverID: "u1"})
		require.NoError(t, err)

		after, err := repo.Conversations(t.Context())
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}

func TestRepository_MarkAsRead(t *testing.T) {
	t.Parallel()

	unreadID := func(t *testing.T, repo *messaging.Repository) string {
		t.Helper()

		messages, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)

		message, ok := lo.Find(messages, func(m core.Message) bool { return !m.IsRead })
		require.True(t, ok, "fixture thread should contain an unread message")
		return message.ID
	}

	t.Run("flips IsRead exactly once", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepository(t)
		id := unreadID(t, repo)

		require.NoError(t, repo.MarkAsRead(t.Context(), id))

		messages, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)
		message, _ := lo.Find(messages, func(m core.Message) bool { return m.ID == id })
		require.True(t, message.IsRead)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepository(t)
		id := unreadID(t, repo)

		require.NoError(t, repo.MarkAsRead(t.Context(), id))

		after, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)

		require.NoError(t, repo.MarkAsRead(t.Context(), id))

		again, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)
		require.Equal(t, after, again)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepository(t)

		before, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)

		require.NoError(t, repo.MarkAsRead(t.Context(), "ghost"))

		after, err := repo.Messages(t.Context(), "u1")
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}
