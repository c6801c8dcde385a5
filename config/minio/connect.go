package minio

import (
	"context"
	"fmt"
	"sync"

	"comment-srv/config"
	"comment-srv/pkg/minio"
)

var (
	client minio.MinIO
	mu     sync.Mutex
)

// Connect builds the avatar store client on first use and makes sure its bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	c, err := minio.NewMinIO(minio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := c.Connect(ctx); err != nil {
		return nil, fmt.Errorf("minio %s unreachable: %w", cfg.Endpoint, err)
	}
	if err := c.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to ensure avatar bucket %s: %w", cfg.Bucket, err)
	}

	client = c
	return client, nil
}

func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
