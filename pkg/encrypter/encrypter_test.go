package encrypter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	e := New("0123456789abcdef0123456789abcdef")

	ct, err := e.Encrypt("yt-access-token")
	require.NoError(t, err)
	assert.NotEqual(t, "yt-access-token", ct)
	assert.False(t, strings.ContainsAny(ct, "+/="), "ciphertext must be header safe")

	again, err := e.Encrypt("yt-access-token")
	require.NoError(t, err)
	assert.NotEqual(t, ct, again, "nonce must differ per call")

	pt, err := e.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "yt-access-token", pt)
}

func TestDecryptErrors(t *testing.T) {
	e := New("0123456789abcdef")

	_, err := e.Decrypt("AAAA")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	_, err = e.Decrypt("not base64 !!")
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	other, err := New("fedcba9876543210").Encrypt("x")
	require.NoError(t, err)
	_, err = e.Decrypt(other)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestInvalidKey(t *testing.T) {
	e := New("short")
	_, err := e.Encrypt("x")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
	_, err = e.Decrypt("x")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestHashVerify(t *testing.T) {
	e := New("0123456789abcdef")
	h, err := e.Hash("scraper-key")
	require.NoError(t, err)
	assert.True(t, e.Verify("scraper-key", h))
	assert.False(t, e.Verify("nope", h))
	assert.False(t, e.Verify("scraper-key", "not-a-hash"))
}

func TestHashRejectsEmptySecret(t *testing.T) {
	e := New("0123456789abcdef")
	_, err := e.Hash("")
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.False(t, e.Verify("", "$2a$10$abc"))
	assert.False(t, e.Verify("key", ""))
}
