package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var encoding = base64.RawURLEncoding

func (e *implEncrypter) gcm() (cipher.AEAD, error) {
	e.once.Do(func() {
		switch len(e.key) {
		case AESKeyLen128, AESKeyLen192, AESKeyLen256:
		default:
			e.err = fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(e.key))
			return
		}
		block, err := aes.NewCipher(e.key)
		if err != nil {
			e.err = fmt.Errorf("encrypter: new cipher: %w", err)
			return
		}
		e.aead, e.err = cipher.NewGCM(block)
	})
	return e.aead, e.err
}

func (e *implEncrypter) Encrypt(plaintext string) (string, error) {
	aead, err := e.gcm()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encrypter: nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return encoding.EncodeToString(sealed), nil
}

func (e *implEncrypter) Decrypt(ciphertext string) (string, error) {
	aead, err := e.gcm()
	if err != nil {
		return "", err
	}
	raw, err := encoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	n := aead.NonceSize()
	if len(raw) < n+aead.Overhead() {
		return "", ErrCiphertextTooShort
	}
	plain, err := aead.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return string(plain), nil
}

func (e *implEncrypter) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("encrypter: hash: %w", err)
	}
	return string(h), nil
}

func (e *implEncrypter) Verify(secret, hash string) bool {
	if secret == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
