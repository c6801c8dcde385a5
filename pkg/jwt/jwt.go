package jwt

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"comment-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrWrongAudience = errors.New("jwt: token not issued for this service")
)

func (m *managerImpl) GenerateToken(userID, username, role string) (string, error) {
	now := time.Now()

	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *managerImpl) VerifyToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if !m.acceptsAudience(claims.Audience) {
		return nil, ErrWrongAudience
	}
	return &claims, nil
}

func (m *managerImpl) acceptsAudience(aud jwt.ClaimStrings) bool {
	if len(m.audience) == 0 {
		return true
	}
	for _, a := range aud {
		if slices.Contains(m.audience, a) {
			return true
		}
	}
	return false
}

// Verify implements scope.Manager.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	claims, err := m.VerifyToken(token)
	if err != nil {
		return scope.Payload{}, err
	}

	return scope.Payload{
		UserID:           claims.Subject,
		Username:         claims.Username,
		Role:             claims.Role,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// CreateToken implements scope.Manager.
func (m *managerImpl) CreateToken(p scope.Payload) (string, error) {
	userID := p.UserID
	if userID == "" {
		userID = p.Subject
	}
	return m.GenerateToken(userID, p.Username, p.Role)
}
