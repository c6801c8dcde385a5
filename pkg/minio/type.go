package minio

import (
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	// Bucket is the default bucket probed by HealthCheck.
	Bucket string
}

type implMinIO struct {
	client    *minio.Client
	config    Config
	mu        sync.RWMutex
	connected bool
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName  string
	ObjectName  string
	Size        int64
	ContentType string
	ETag        string
	UploadedAt  time.Time
}

type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

type PresignedURL struct {
	URL       string
	ExpiresAt time.Time
}
