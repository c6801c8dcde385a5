package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	var lastErr error
	for attempt := 0; attempt < connectAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return NewConnectionError(ctx.Err())
			case <-time.After(connectBackoff << (attempt - 1)):
			}
		}
		if _, err := m.client.ListBuckets(ctx); err != nil {
			lastErr = err
			continue
		}
		m.mu.Lock()
		m.connected = true
		m.mu.Unlock()
		return nil
	}
	return handleMinIOError(fmt.Errorf("after %d attempts: %w", connectAttempts, lastErr), "connect")
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := m.client.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return handleMinIOError(err, "bucket_exists")
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return handleMinIOError(err, "make_bucket")
	}
	return nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	if req.OriginalName != "" {
		meta[metaOriginalName] = req.OriginalName
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: meta,
	})
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}
	return &FileInfo{
		BucketName:  req.BucketName,
		ObjectName:  req.ObjectName,
		Size:        info.Size,
		ContentType: req.ContentType,
		ETag:        info.ETag,
		UploadedAt:  time.Now(),
	}, nil
}

func (m *implMinIO) PresignGet(ctx context.Context, bucketName, objectName string, expiry time.Duration) (*PresignedURL, error) {
	if err := validateObject(bucketName, objectName); err != nil {
		return nil, err
	}
	if err := validateExpiry(expiry); err != nil {
		return nil, err
	}
	u, err := m.client.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return nil, handleMinIOError(err, "presign_get")
	}
	return &PresignedURL{URL: u.String(), ExpiresAt: time.Now().Add(expiry)}, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := validateObject(bucketName, objectName); err != nil {
		return err
	}
	if err := m.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "delete_file")
	}
	return nil
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	se := &StorageError{Operation: operation, Cause: err}
	switch resp.Code {
	case "":
		se.Code, se.Message = ErrCodeConnection, "connection failed"
	case "NoSuchBucket":
		se.Code, se.Message = ErrCodeBucketNotFound, "bucket not found: "+resp.BucketName
	case "NoSuchKey":
		se.Code, se.Message = ErrCodeNotFound, "object not found: "+resp.Key
	case "AccessDenied":
		se.Code, se.Message = ErrCodePermission, "access denied"
	default:
		se.Code, se.Message = ErrCodeConnection, "operation failed: "+resp.Code
	}
	return se
}
