package jwt

import (
	"fmt"

	"comment-srv/pkg/scope"
)

// IManager verifies identity-service tokens. GenerateToken exists for
// development tooling; production tokens are minted elsewhere.
type IManager interface {
	scope.Manager
	GenerateToken(userID, username, role string) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}
