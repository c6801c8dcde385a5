package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/onboarding/repository"

	"github.com/lib/pq"
)

const profileColumns = `user_id, name, avatar, persona, tone, signature, action_bias, step, created_at, updated_at`

func (r *implRepository) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var p model.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Avatar, &p.Persona, &p.Tone, &p.Signature, &p.ActionBias, &p.Step,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("GetProfile: %w", err)
	}
	return p, nil
}

// UpsertProfile - Insert or replace the profile. The step never moves backwards.
func (r *implRepository) UpsertProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	query := `INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			avatar = EXCLUDED.avatar,
			persona = EXCLUDED.persona,
			tone = EXCLUDED.tone,
			signature = EXCLUDED.signature,
			action_bias = EXCLUDED.action_bias,
			step = CASE
				WHEN array_position($10::text[], EXCLUDED.step) > array_position($10::text[], profiles.step)
				THEN EXCLUDED.step ELSE profiles.step END,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns

	order := pq.Array([]string{string(model.StepProfileSetup), string(model.StepPlatformConnect), string(model.StepDashboard)})
	var out model.Profile
	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.Name, p.Avatar, p.Persona, p.Tone, p.Signature, p.ActionBias, p.Step, time.Now(), order,
	).Scan(
		&out.UserID, &out.Name, &out.Avatar, &out.Persona, &out.Tone, &out.Signature, &out.ActionBias, &out.Step,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("UpsertProfile: %w", err)
	}
	return out, nil
}

func (r *implRepository) ListConnections(ctx context.Context, userID string) ([]model.PlatformConnection, error) {
	query := `SELECT user_id, platform, connected, access_token, connected_at
		FROM platform_connections WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListConnections: %w", err)
	}
	defer rows.Close()

	conns := make([]model.PlatformConnection, 0)
	for rows.Next() {
		var (
			c     model.PlatformConnection
			token sql.NullString
			at    sql.NullTime
		)
		if err := rows.Scan(&c.UserID, &c.Platform, &c.Connected, &token, &at); err != nil {
			return nil, fmt.Errorf("ListConnections: %w", err)
		}
		c.AccessToken = token.String
		if at.Valid {
			t := at.Time
			c.ConnectedAt = &t
		}
		conns = append(conns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListConnections: %w", err)
	}
	return conns, nil
}

func (r *implRepository) SetConnection(ctx context.Context, c model.PlatformConnection) error {
	query := `INSERT INTO platform_connections (user_id, platform, connected, access_token, connected_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, platform) DO UPDATE SET
			connected = EXCLUDED.connected,
			access_token = EXCLUDED.access_token,
			connected_at = EXCLUDED.connected_at`

	token := sql.NullString{String: c.AccessToken, Valid: c.AccessToken != ""}
	var at sql.NullTime
	if c.ConnectedAt != nil {
		at = sql.NullTime{Time: *c.ConnectedAt, Valid: true}
	}
	if _, err := r.db.ExecContext(ctx, query, c.UserID, c.Platform, c.Connected, token, at); err != nil {
		return fmt.Errorf("SetConnection: %w", err)
	}
	return nil
}
