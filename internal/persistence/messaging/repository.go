package messaging

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/samber/lo"

	"marketloop/internal/core"
	"marketloop/internal/fixtures"
	"marketloop/internal/keyvalue"
	"marketloop/internal/persistence"
)

type Repository struct {
	Logger *slog.Logger
	KV     core.KeyValueStore
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "messaging.Repository")
	return nil
}

func (r *Repository) Conversations(ctx context.Context) ([]core.Conversation, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.KeyConversations, fixtures.Conversations)
}

func (r *Repository) Messages(ctx context.Context, conversationID string) ([]core.Message, error) {
	return persistence.LoadOrSeed(ctx, r.KV, core.MessagesKey(conversationID), func() []core.Message {
		return fixtures.Messages(conversationID)
	})
}

// SendMessage appends to the receiver's thread, attributed to the current
// user. The conversation summary (lastMessage, unreadCount) is left alone.
func (r *Repository) SendMessage(ctx context.Context, req core.SendMessageRequest) (*core.Message, error) {
	key := core.MessagesKey(req.ReceiverID)

	unlock := r.KV.LockKey(key)
	defer unlock()

	items, err := r.Messages(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := core.Message{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		Content:    req.Content,
		SenderID:   core.CurrentUserID,
		ReceiverID: req.ReceiverID,
		Timestamp:  now,
	}

	if err := keyvalue.SetJSON(ctx, r.KV, key, append(items, created)); err != nil {
		return nil, err
	}
	return &created, nil
}

// MarkAsRead locates the message across every persisted thread and flips
// IsRead once. Already-read and unknown ids are no-ops, so the call is
// idempotent. Only threads listed in the conversations collection are
// scanned; a thread keyed by a counterpart with no conversation entry is
// unreachable here.
func (r *Repository) MarkAsRead(ctx context.Context, messageID string) error {
	conversations, err := r.Conversations(ctx)
	if err != nil {
		return err
	}

	for _, conversation := range conversations {
		key := core.MessagesKey(conversation.ID)

		done, err := r.markInThread(ctx, key, messageID)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	return nil
}

func (r *Repository) markInThread(ctx context.Context, key, messageID string) (bool, error) {
	unlock := r.KV.LockKey(key)
	defer unlock()

	items, err := keyvalue.GetJSON(ctx, r.KV, key, []core.Message(nil))
	if err != nil {
		return false, err
	}

	message, _, ok := lo.FindIndexOf(items, func(m core.Message) bool { return m.ID == messageID })
	if !ok {
		return false, nil
	}
	if message.IsRead {
		return true, nil
	}

	updated := lo.Map(items, func(m core.Message, _ int) core.Message {
		if m.ID == messageID {
			m.IsRead = true
		}
		return m
	})

	return true, keyvalue.SetJSON(ctx, r.KV, key, updated)
}
