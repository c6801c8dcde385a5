package kafka

import "time"

// ReplyDispatchMessage - One reply to post under a platform comment
type ReplyDispatchMessage struct {
	ReplyID       string    `json:"reply_id"`
	CommentID     string    `json:"comment_id"`
	UserID        string    `json:"user_id"`
	Text          string    `json:"text"`
	AuthorName    string    `json:"author_name"`
	AuthorAvatar  string    `json:"author_avatar,omitempty"`
	IsAIGenerated bool      `json:"is_ai_generated"`
	SentAt        time.Time `json:"sent_at"`
}
