package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"comment-srv/internal/comment/repository"
	"comment-srv/internal/model"

	"github.com/lib/pq"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID, &c.PostID, &c.UserID, &c.Platform, &c.Author.Name, &c.Author.Avatar, &c.Text, &c.Time,
		&c.Emotion, &c.Sentiment, &c.Category, &c.Flagged, &c.NeedsAttention, &c.Archived, &c.Saved, &c.Important,
		&c.Likes, &c.Replies, &c.Position, &c.CreatedAt,
	)
	return c, err
}

// ListComments - All live comments of a user in store order
func (r *implRepository) ListComments(ctx context.Context, opt repository.ListOptions) ([]model.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY position ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("ListComments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	return comments, nil
}

// GetComment - One live comment owned by the user
func (r *implRepository) GetComment(ctx context.Context, opt repository.GetOptions) (model.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	c, err := scanComment(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comment{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("GetComment: %w", err)
	}
	return c, nil
}

// UpdateFlags - Set one boolean column on a set of comments
func (r *implRepository) UpdateFlags(ctx context.Context, opt repository.UpdateFlagsOptions) (int, error) {
	col, ok := flagColumn(opt.Flag)
	if !ok {
		return 0, repository.ErrInvalidFlag
	}

	query := fmt.Sprintf(`UPDATE comments SET %s = $1, updated_at = $2
		WHERE user_id = $3 AND id = ANY($4) AND deleted_at IS NULL`, col)

	res, err := r.db.ExecContext(ctx, query, opt.Value, time.Now(), opt.UserID, pq.Array(opt.IDs))
	if err != nil {
		return 0, fmt.Errorf("UpdateFlags: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("UpdateFlags: %w", err)
	}
	return int(n), nil
}

// SoftDelete - Hide comments from every listing
func (r *implRepository) SoftDelete(ctx context.Context, opt repository.SoftDeleteOptions) (int, error) {
	query := `UPDATE comments SET deleted_at = $1
		WHERE user_id = $2 AND id = ANY($3) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, time.Now(), opt.UserID, pq.Array(opt.IDs))
	if err != nil {
		return 0, fmt.Errorf("SoftDelete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("SoftDelete: %w", err)
	}
	return int(n), nil
}

// UpsertComments - Insert or refresh comments in one transaction, appending new ones after the current tail
func (r *implRepository) UpsertComments(ctx context.Context, opt repository.UpsertOptions) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("UpsertComments: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM comments WHERE user_id = $1`, opt.UserID,
	).Scan(&next); err != nil {
		return 0, fmt.Errorf("UpsertComments: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO comments (`+commentColumns+`, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id) DO UPDATE SET
			text = EXCLUDED.text,
			time_label = EXCLUDED.time_label,
			emotion = EXCLUDED.emotion,
			sentiment = EXCLUDED.sentiment,
			category = EXCLUDED.category,
			needs_attention = EXCLUDED.needs_attention,
			likes = EXCLUDED.likes,
			author_name = EXCLUDED.author_name,
			author_avatar = EXCLUDED.author_avatar,
			updated_at = EXCLUDED.updated_at
		WHERE comments.user_id = EXCLUDED.user_id`)
	if err != nil {
		return 0, fmt.Errorf("UpsertComments: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i, c := range opt.Comments {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		_, err := stmt.ExecContext(ctx,
			c.ID, c.PostID, opt.UserID, c.Platform, c.Author.Name, c.Author.Avatar, c.Text, c.Time,
			c.Emotion, c.Sentiment, c.Category, c.Flagged, c.NeedsAttention, c.Archived, c.Saved, c.Important,
			c.Likes, c.Replies, next+i, createdAt, now,
		)
		if err != nil {
			r.l.Errorf(ctx, "comment.repository.postgre.UpsertComments: id=%s: %v", c.ID, err)
			return 0, fmt.Errorf("%w: %v", repository.ErrUpsertFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("UpsertComments: %w", err)
	}
	return len(opt.Comments), nil
}
