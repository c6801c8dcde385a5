package model

import "time"

// ReplyAuthor is the writer of a thread entry. IsOwner marks replies sent from the dashboard.
type ReplyAuthor struct {
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	IsOwner bool   `json:"is_owner"`
}

// Reply is one entry in a comment thread.
type Reply struct {
	ID            string      `json:"id"`
	CommentID     string      `json:"comment_id"`
	Author        ReplyAuthor `json:"author"`
	Text          string      `json:"text"`
	Time          string      `json:"time"`
	TimeTooltip   string      `json:"time_tooltip"`
	Likes         int         `json:"likes"`
	IsAIGenerated bool        `json:"is_ai_generated"`
	CreatedAt     time.Time   `json:"created_at"`
}
