package usecases

import (
	"context"

	"marketloop/internal/core"
)

type Messaging struct {
	Messaging core.MessagingRepository
}

func (m *Messaging) Conversations(ctx context.Context) ([]core.Conversation, error) {
	return m.Messaging.Conversations(ctx)
}

func (m *Messaging) Messages(ctx context.Context, conversationID string) ([]core.Message, error) {
	return m.Messaging.Messages(ctx, conversationID)
}

func (m *Messaging) Send(ctx context.Context, req core.SendMessageRequest) (*core.Message, error) {
	return m.Messaging.SendMessage(ctx, req)
}

func (m *Messaging) MarkAsRead(ctx context.Context, messageID string) error {
	return m.Messaging.MarkAsRead(ctx, messageID)
}
