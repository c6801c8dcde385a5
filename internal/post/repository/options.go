package repository

import "comment-srv/internal/model"

type GetOptions struct {
	UserID string
	ID     string
}

type CommentOptions struct {
	UserID    string
	CommentID string
}

type UpsertOptions struct {
	UserID string
	Posts  []model.Post
}
