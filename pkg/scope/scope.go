package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"comment-srv/internal/model"
)

// Header carries a user scope on service-to-service calls.
const Header = "X-Scope"

var ErrMissingUser = errors.New("scope: user id is required")

// NewScope maps a verified token to the caller's scope. Tokens minted by
// the identity service put the user id in "sub" only.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// EncodeHeader serializes sc for the Header value.
func EncodeHeader(sc model.Scope) (string, error) {
	if sc.UserID == "" {
		return "", ErrMissingUser
	}
	raw, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeHeader is the inverse of EncodeHeader.
func DecodeHeader(value string) (model.Scope, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return model.Scope{}, fmt.Errorf("scope: decode header: %w", err)
	}

	var sc model.Scope
	if err := json.Unmarshal(raw, &sc); err != nil {
		return model.Scope{}, fmt.Errorf("scope: unmarshal header: %w", err)
	}
	if sc.UserID == "" {
		return model.Scope{}, ErrMissingUser
	}
	return sc, nil
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope set by the auth middleware, or the
// zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc
}
