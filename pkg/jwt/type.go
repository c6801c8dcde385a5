package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	SecretKey string
	Issuer    string
	// Audience, when set, must contain one of these values.
	Audience []string
	TTL      time.Duration
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// Claims is the token body shared with the identity service.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
