package core

import "time"

// CurrentUserID is the sentinel identity every locally-originated write is
// attributed to. There is exactly one user per installation.
const CurrentUserID = "me"

// User is an embedded author/counterpart snapshot. It is persisted by value
// inside the records that reference it, never by id alone.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Handle    string `json:"handle,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Verified  bool   `json:"verified,omitempty"`
}

type Post struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	AuthorID      string    `json:"authorId"`
	Author        User      `json:"author"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	IsLiked       bool      `json:"isLiked"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Comment struct {
	ID              string    `json:"id"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	LikesCount      int       `json:"likesCount"`
	User            User      `json:"user"`
	ReplyTo         *User     `json:"replyTo,omitempty"`
	ParentCommentID string    `json:"parentCommentId,omitempty"`
}

// NewComment is the caller-supplied part of a comment; the repository fills
// in the id, timestamp and author.
type NewComment struct {
	Content         string `json:"content"`
	ReplyTo         *User  `json:"replyTo,omitempty"`
	ParentCommentID string `json:"parentCommentId,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

type Order struct {
	ID         string      `json:"id"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Currency   string      `json:"currency"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Product struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	PriceCents         int64           `json:"priceCents"`
	OriginalPriceCents int64           `json:"originalPriceCents,omitempty"`
	Currency           string          `json:"currency"`
	ImageURLs          []string        `json:"imageUrls"`
	SellerName         string          `json:"sellerName"`
	Options            []ProductOption `json:"options,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type CreatorProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Handle         string `json:"handle"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	PostsCount     int    `json:"postsCount"`
	Verified       bool   `json:"verified"`
}

// Conversation is the thread summary shown in the inbox. Its id doubles as
// the counterpart user's id.
type Conversation struct {
	ID            string    `json:"id"`
	User          User      `json:"user"`
	LastMessage   string    `json:"lastMessage"`
	Timestamp     time.Time `json:"timestamp"`
	UnreadCount   int       `json:"unreadCount"`
	HasNewMessage bool      `json:"hasNewMessage"`
}

type Message struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"isRead"`
}

type SendMessageRequest struct {
	Content    string `json:"content"`
	ReceiverID string `json:"receiverId"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ProfileDraft is the singleton onboarding draft, one per installation.
type ProfileDraft struct {
	Name        string       `json:"name"`
	Status      string       `json:"status"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
	AvatarURL   string       `json:"avatarUrl,omitempty"`
}

// SellerProduct is a read-only listing projection for the seller dashboard.
type SellerProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceLabel string `json:"priceLabel"`
	Status     string `json:"status"`
	ImageURL   string `json:"imageUrl"`
	Sales      int    `json:"sales"`
	Views      int    `json:"views"`
}
