package encrypter

import "errors"

var (
	ErrInvalidKeyLength   = errors.New("encrypter: key must be 16, 24 or 32 bytes")
	ErrCiphertextTooShort = errors.New("encrypter: ciphertext too short")
	ErrDecryptionFailed   = errors.New("encrypter: decryption failed")
	// ErrEmptySecret is returned by Hash; an empty service key must never verify.
	ErrEmptySecret = errors.New("encrypter: empty secret")
)
