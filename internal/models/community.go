package models

import "time"

// SelfAuthorID marks posts authored by the local user.
const SelfAuthorID = "me"

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is social content. Append-only except for like/save toggles and
// comment appends.
type Post struct {
	ID            string    `json:"id"`
	Author        string    `json:"author"`
	AuthorID      string    `json:"authorId,omitempty"`
	Avatar        string    `json:"avatar"`
	Content       string    `json:"content"`
	Image         string    `json:"image,omitempty"`
	Video         string    `json:"video,omitempty"`
	Likes         int       `json:"likes"`
	CommentsCount int       `json:"commentsCount"`
	Comments      []Comment `json:"comments"`
	Timestamp     time.Time `json:"timestamp"`
	IsLiked       bool      `json:"isLiked"`
	IsSaved       bool      `json:"isSaved"`
	Category      string    `json:"category,omitempty"`
}

type NotificationType string

const (
	NotificationLike        NotificationType = "like"
	NotificationComment     NotificationType = "comment"
	NotificationMention     NotificationType = "mention"
	NotificationFollow      NotificationType = "follow"
	NotificationSystem      NotificationType = "system"
	NotificationAchievement NotificationType = "achievement"
)

// Notification is an event record. The list is append-only and kept
// newest-first; read/unread is the only mutable field.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	FromUser  string           `json:"fromUser,omitempty"`
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
