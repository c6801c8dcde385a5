package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for an HS256 secret.
	MinSecretKeyLen = 32

	defaultTTL = 8 * time.Hour
	leeway     = 30 * time.Second
)
