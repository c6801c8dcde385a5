package jwt

import (
	"testing"
	"time"

	"comment-srv/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T, cfg Config) IManager {
	t.Helper()
	cfg.SecretKey = secret
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

func TestNewRejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}

func TestGenerateAndVerify(t *testing.T) {
	m := newManager(t, Config{Issuer: "smap-auth-service", Audience: []string{"comment-srv"}, TTL: time.Minute})

	tok, err := m.GenerateToken("u-1", "acme", "USER")
	require.NoError(t, err)

	p, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "acme", p.Username)
	assert.Equal(t, "USER", p.Role)
}

func TestCreateTokenFallsBackToSubject(t *testing.T) {
	m := newManager(t, Config{})
	tok, err := m.CreateToken(scope.Payload{Role: "ADMIN"})
	require.NoError(t, err)
	claims, err := m.VerifyToken(tok)
	require.NoError(t, err)
	assert.Empty(t, claims.Subject)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestVerifyRejects(t *testing.T) {
	m := newManager(t, Config{Issuer: "smap-auth-service", Audience: []string{"comment-srv"}})

	foreignIssuer := newManager(t, Config{Issuer: "someone-else", Audience: []string{"comment-srv"}})
	foreignAudience := newManager(t, Config{Issuer: "smap-auth-service", Audience: []string{"billing-srv"}})
	expired := newManager(t, Config{Issuer: "smap-auth-service", Audience: []string{"comment-srv"}})
	expired.(*managerImpl).ttl = -time.Hour

	tcs := map[string]struct {
		issuer IManager
		err    error
	}{
		"foreign issuer":   {issuer: foreignIssuer, err: ErrInvalidToken},
		"foreign audience": {issuer: foreignAudience, err: ErrWrongAudience},
		"expired":          {issuer: expired, err: ErrInvalidToken},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			tok, err := tc.issuer.GenerateToken("u-1", "", "USER")
			require.NoError(t, err)
			_, err = m.Verify(tok)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
