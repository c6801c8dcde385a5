package repository

import "comment-srv/internal/model"

type ListOptions struct {
	UserID    string
	CommentID string
}

type InsertOptions struct {
	UserID string
	Reply  model.Reply
}
