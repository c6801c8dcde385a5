package encrypter

import (
	"crypto/cipher"
	"sync"
)

const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32
)

// implEncrypter seals secrets with AES-GCM and hashes service keys with bcrypt.
// The AEAD is built on first use so a bad key surfaces as an error, not a panic.
type implEncrypter struct {
	key []byte

	once sync.Once
	aead cipher.AEAD
	err  error
}
