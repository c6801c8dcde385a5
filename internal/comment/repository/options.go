package repository

import "comment-srv/internal/model"

type ListOptions struct {
	UserID string
}

type GetOptions struct {
	UserID string
	ID     string
}

// Flag is a boolean comment column that actions may set.
type Flag string

const (
	FlagFlagged   Flag = "flagged"
	FlagArchived  Flag = "archived"
	FlagSaved     Flag = "saved"
	FlagImportant Flag = "important"
)

type UpdateFlagsOptions struct {
	UserID string
	IDs    []string
	Flag   Flag
	Value  bool
}

type SoftDeleteOptions struct {
	UserID string
	IDs    []string
}

type UpsertOptions struct {
	UserID   string
	Comments []model.Comment
}
