package minio

import "time"

const (
	maxIdleConns    = 32
	idleConnTimeout = 90 * time.Second

	connectAttempts = 3
	connectBackoff  = time.Second
)

const (
	// MaxFileSizeBytes caps a single upload.
	MaxFileSizeBytes = 10 * 1024 * 1024
	// MaxPresignedExpiry is the S3 limit for presigned GETs.
	MaxPresignedExpiry = 7 * 24 * time.Hour
	// DefaultEndpointPort is appended to an endpoint without a port.
	DefaultEndpointPort = ":9000"
)

const metaOriginalName = "original-name"
