package minio

import (
	"strings"
	"time"
)

func validateConfig(cfg *Config) error {
	switch {
	case cfg.Endpoint == "":
		return NewInvalidInputError("endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return NewInvalidInputError("access key and secret key are required")
	case cfg.Region == "":
		return NewInvalidInputError("region is required")
	case cfg.Bucket == "":
		return NewInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += DefaultEndpointPort
	}
	return nil
}

func validateObject(bucketName, objectName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	switch {
	case objectName == "":
		return NewInvalidInputError("object name is required")
	case strings.HasPrefix(objectName, "/") || strings.HasSuffix(objectName, "/"):
		return NewInvalidInputError("object name cannot start or end with '/'")
	case strings.Contains(objectName, `\`):
		return NewInvalidInputError("object name cannot contain backslashes")
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if err := validateObject(req.BucketName, req.ObjectName); err != nil {
		return err
	}
	switch {
	case req.Reader == nil:
		return NewInvalidInputError("reader is required")
	case req.Size <= 0:
		return NewInvalidInputError("size must be positive")
	case req.Size > MaxFileSizeBytes:
		return NewInvalidInputError("file size cannot exceed 10MB")
	case req.ContentType == "":
		return NewInvalidInputError("content type is required")
	}
	return nil
}

func validateExpiry(expiry time.Duration) error {
	if expiry <= 0 || expiry > MaxPresignedExpiry {
		return NewInvalidInputError("expiry must be between 1s and 7 days")
	}
	return nil
}

// validateBucketName applies the S3 naming rules this service relies on.
func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return NewInvalidInputError("bucket name must be 3 to 63 characters")
	}
	for _, r := range bucketName {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.Contains(bucketName, "--") || strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name has misplaced hyphens")
	}
	return nil
}
