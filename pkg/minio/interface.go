package minio

import (
	"context"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO stores user-uploaded objects and hands out time-limited read links.
// Every error it returns is a *StorageError.
type MinIO interface {
	// Connect verifies credentials, retrying with backoff.
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	PresignGet(ctx context.Context, bucketName, objectName string, expiry time.Duration) (*PresignedURL, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}

func NewMinIO(cfg Config) (MinIO, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConns,
			IdleConnTimeout:     idleConnTimeout,
			// images are already compressed
			DisableCompression: true,
		},
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{client: client, config: cfg}, nil
}
