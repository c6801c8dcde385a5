package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the verified token content.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager verifies and issues tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

type scopeCtxKey struct{}
