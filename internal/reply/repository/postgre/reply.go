package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/reply/repository"
)

const replyColumns = `r.id, r.comment_id, r.author_name, r.author_avatar, r.is_owner, r.text, r.likes, r.is_ai_generated, r.created_at`

// ListReplies - Thread of a comment, oldest first
func (r *implRepository) ListReplies(ctx context.Context, opt repository.ListOptions) ([]model.Reply, error) {
	query := `SELECT ` + replyColumns + ` FROM comment_replies r
		JOIN comments c ON c.id = r.comment_id
		WHERE r.comment_id = $1 AND c.user_id = $2
		ORDER BY r.created_at ASC, r.id ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.CommentID, opt.UserID)
	if err != nil {
		return nil, fmt.Errorf("ListReplies: %w", err)
	}
	defer rows.Close()

	replies := []model.Reply{}
	for rows.Next() {
		var rp model.Reply
		if err := rows.Scan(
			&rp.ID, &rp.CommentID, &rp.Author.Name, &rp.Author.Avatar, &rp.Author.IsOwner,
			&rp.Text, &rp.Likes, &rp.IsAIGenerated, &rp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListReplies: scan: %w", err)
		}
		replies = append(replies, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReplies: %w", err)
	}
	return replies, nil
}

// InsertReply - Record a thread entry and bump the comment reply counter
func (r *implRepository) InsertReply(ctx context.Context, opt repository.InsertOptions) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("InsertReply: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT TRUE FROM comments WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL FOR UPDATE`,
		opt.Reply.CommentID, opt.UserID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, repository.ErrCommentNotFound
	}
	if err != nil {
		return false, fmt.Errorf("InsertReply: lock comment: %w", err)
	}

	rp := opt.Reply
	res, err := tx.ExecContext(ctx, `INSERT INTO comment_replies
		(id, comment_id, author_name, author_avatar, is_owner, text, likes, is_ai_generated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`,
		rp.ID, rp.CommentID, rp.Author.Name, rp.Author.Avatar, rp.Author.IsOwner,
		rp.Text, rp.Likes, rp.IsAIGenerated, rp.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("InsertReply: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE comments SET replies = replies + 1 WHERE id = $1 AND user_id = $2`,
		rp.CommentID, opt.UserID,
	); err != nil {
		return false, fmt.Errorf("InsertReply: bump replies: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("InsertReply: %w", err)
	}
	return true, nil
}
