package redis

import (
	"context"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/dashboard/repository"
)

const sessionPrefix = "dashboard:session:"

func sessionKey(userID string) string { return sessionPrefix + userID }

func (r *implRepository) GetSession(ctx context.Context, userID string) (dashboard.Session, error) {
	var s dashboard.Session
	found, err := r.redis.GetJSON(ctx, sessionKey(userID), &s)
	if err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.GetSession: %v", err)
		return dashboard.Session{}, err
	}
	if !found {
		return dashboard.Session{}, repository.ErrNotFound
	}
	if s.Selection == nil {
		s.Selection = dashboard.Selection{}
	}
	return s, nil
}

func (r *implRepository) SaveSession(ctx context.Context, userID string, s dashboard.Session) error {
	if err := r.redis.SetJSON(ctx, sessionKey(userID), s, r.ttl); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.SaveSession: %v", err)
		return err
	}
	return nil
}
