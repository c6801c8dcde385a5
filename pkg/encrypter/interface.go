package encrypter

// Encrypter seals platform access tokens at rest and verifies service keys.
// Implementations are safe for concurrent use.
type Encrypter interface {
	// Encrypt returns URL-safe base64 of nonce||ciphertext.
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	Hash(secret string) (string, error)
	// Verify reports whether secret matches a hash produced by Hash.
	Verify(secret, hash string) bool
}

// New creates an Encrypter. key must be 16, 24 or 32 bytes; otherwise every
// Encrypt and Decrypt call fails with ErrInvalidKeyLength.
func New(key string) Encrypter {
	return &implEncrypter{key: []byte(key)}
}
