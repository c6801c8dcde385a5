package reply

import (
	"time"

	"comment-srv/internal/model"
)

const (
	DefaultSessionTTL    = 24 * time.Hour
	DefaultSubmitLockTTL = 30 * time.Second
	// MaxParallelDispatch bounds the publish fan-out of a bulk submit.
	MaxParallelDispatch = 8
	// SuggestionCount is how many personalised suggestions are requested.
	SuggestionCount = 2
)

type OpenInput struct {
	CommentIDs []string
	// FromSelection takes the recipients from the dashboard selection; CommentIDs is ignored.
	FromSelection bool
}

type SubmitOutput struct {
	Sent  int
	Toast model.Toast
}

// Dispatch is one reply to be posted to a platform comment.
type Dispatch struct {
	ReplyID       string
	CommentID     string
	UserID        string
	Text          string
	AuthorName    string
	AuthorAvatar  string
	IsAIGenerated bool
	SentAt        time.Time
}

// DeliverInput records a dispatched reply in the comment thread.
type DeliverInput struct {
	Dispatch
}
