package scope

import (
	"context"
	"testing"

	"comment-srv/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScopeFallsBackToSubject(t *testing.T) {
	sc := NewScope(Payload{Role: "USER", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"}})
	assert.Equal(t, "u-1", sc.UserID)

	sc = NewScope(Payload{UserID: "u-2", Username: "brand", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"}})
	assert.Equal(t, "u-2", sc.UserID)
	assert.Equal(t, "brand", sc.Username)
}

func TestHeader(t *testing.T) {
	h, err := EncodeHeader(model.Scope{UserID: "u-1", Role: "ADMIN"})
	require.NoError(t, err)
	assert.NotContains(t, h, "=")

	sc, err := DecodeHeader(h)
	require.NoError(t, err)
	assert.Equal(t, model.Scope{UserID: "u-1", Role: "ADMIN"}, sc)

	_, err = EncodeHeader(model.Scope{Role: "ADMIN"})
	assert.ErrorIs(t, err, ErrMissingUser)

	_, err = DecodeHeader("%%%")
	assert.Error(t, err)

	// valid base64 of {"role":"x"}
	_, err = DecodeHeader("eyJyb2xlIjoieCJ9")
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestScopeContext(t *testing.T) {
	assert.Empty(t, GetScopeFromContext(context.Background()).UserID)
	ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "u-2"})
	assert.Equal(t, "u-2", GetScopeFromContext(ctx).UserID)
}
