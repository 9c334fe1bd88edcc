package core

import "context"

// KeyValueStore is the flat string-keyed persistence primitive everything
// else is built on. Get returns (nil, nil) for an absent key; absence is
// never an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error

	// LockKey serializes read-modify-write sequences on a single key.
	// The returned func releases the lock.
	LockKey(key string) func()
}

type PostsRepository interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	Like(ctx context.Context, id string) error
	Unlike(ctx context.Context, id string) error
}

type CommentsRepository interface {
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
	Add(ctx context.Context, postID string, comment NewComment) (*Comment, error)
}

type OrdersRepository interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
}

type ProductsRepository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

type ProfilesRepository interface {
	List(ctx context.Context) ([]CreatorProfile, error)
	GetByID(ctx context.Context, id string) (*CreatorProfile, error)
	Follow(ctx context.Context, id string) error
	Unfollow(ctx context.Context, id string) error
}

type MessagingRepository interface {
	Conversations(ctx context.Context) ([]Conversation, error)
	Messages(ctx context.Context, conversationID string) ([]Message, error)
	SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error)
	MarkAsRead(ctx context.Context, messageID string) error
}

type UsersRepository interface {
	ProfileDraft(ctx context.Context) (ProfileDraft, error)
	SaveProfileDraft(ctx context.Context, draft ProfileDraft) error
}

type SellerProductsRepository interface {
	List(ctx context.Context) ([]SellerProduct, error)
}
