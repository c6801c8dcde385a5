package post

import (
	"time"

	"comment-srv/internal/model"
)

const (
	NoSelectionMessage = "Select a comment"
	DefaultCacheTTL    = 5 * time.Minute
)

type PreviewInput struct {
	CommentID string
}

// PreviewOutput is silent about missing posts: Found=false with no error.
type PreviewOutput struct {
	Found         bool
	Message       string
	Post          model.Post
	PlatformLabel string
	PlatformIcon  string
	ReplyCount    int
}

type UpsertInput struct {
	Posts []model.Post
}
