package core

// Store key namespace. The literal values are load-bearing: they name the
// collections a deployed installation already persisted, so they must not
// change between releases.
const (
	KeyConversations  = "conversations"
	KeyPosts          = "posts"
	KeyProducts       = "products"
	KeyOrders         = "orders"
	KeyProfiles       = "profiles"
	KeySellerProducts = "settings.sellerProducts"
	KeyProfileDraft   = "user.profileDraft"
)

// MessagesKey addresses the message list of one conversation.
func MessagesKey(conversationID string) string {
	return "messages:" + conversationID
}

// CommentsKey addresses the comment list of one post.
func CommentsKey(postID string) string {
	return "comments_" + postID
}
