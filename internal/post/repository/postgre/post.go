package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/post/repository"
)

const postColumns = `id, user_id, platform, title, caption, thumbnail, date, likes, comments, views, updated_at`

// GetPost - One post owned by the user
func (r *implRepository) GetPost(ctx context.Context, opt repository.GetOptions) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1 AND user_id = $2`

	var p model.Post
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID).Scan(
		&p.ID, &p.UserID, &p.Platform, &p.Title, &p.Caption, &p.Thumbnail, &p.Date,
		&p.Likes, &p.Comments, &p.Views, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("GetPost: %w", err)
	}
	return p, nil
}

// CommentPostID - Resolve the post a comment belongs to
func (r *implRepository) CommentPostID(ctx context.Context, opt repository.CommentOptions) (string, error) {
	query := `SELECT post_id FROM comments WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	var postID string
	err := r.db.QueryRowContext(ctx, query, opt.CommentID, opt.UserID).Scan(&postID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("CommentPostID: %w", err)
	}
	return postID, nil
}

// CountReplies - Number of thread entries under a comment
func (r *implRepository) CountReplies(ctx context.Context, opt repository.CommentOptions) (int, error) {
	query := `SELECT COUNT(*) FROM comment_replies r
		JOIN comments c ON c.id = r.comment_id
		WHERE r.comment_id = $1 AND c.user_id = $2`

	var n int
	if err := r.db.QueryRowContext(ctx, query, opt.CommentID, opt.UserID).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountReplies: %w", err)
	}
	return n, nil
}

// UpsertPosts - Insert or refresh posts in one transaction
func (r *implRepository) UpsertPosts(ctx context.Context, opt repository.UpsertOptions) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("UpsertPosts: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO posts (`+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			caption = EXCLUDED.caption,
			thumbnail = EXCLUDED.thumbnail,
			date = EXCLUDED.date,
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			views = EXCLUDED.views,
			updated_at = EXCLUDED.updated_at
		WHERE posts.user_id = EXCLUDED.user_id`)
	if err != nil {
		return 0, fmt.Errorf("UpsertPosts: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	n := 0
	for _, p := range opt.Posts {
		res, err := stmt.ExecContext(ctx,
			p.ID, opt.UserID, p.Platform, p.Title, p.Caption, p.Thumbnail, p.Date,
			p.Likes, p.Comments, p.Views, now,
		)
		if err != nil {
			return 0, fmt.Errorf("UpsertPosts: %s: %w", p.ID, err)
		}
		affected, _ := res.RowsAffected()
		n += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("UpsertPosts: %w", err)
	}
	return n, nil
}
