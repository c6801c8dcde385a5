package minio

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfigAddsDefaultPort(t *testing.T) {
	cfg := Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Region: "us-east-1", Bucket: "avatars"}
	assert.NoError(t, validateConfig(&cfg))
	assert.Equal(t, "localhost"+DefaultEndpointPort, cfg.Endpoint)

	cfg = Config{Endpoint: "localhost:9000"}
	assert.Error(t, validateConfig(&cfg))
}

func TestValidateUploadRequest(t *testing.T) {
	ok := UploadRequest{
		BucketName: "avatars", ObjectName: "u-1/avatar.png",
		Reader: strings.NewReader("x"), Size: 1, ContentType: "image/png",
	}

	tcs := map[string]struct {
		mutate func(r *UploadRequest)
		valid  bool
	}{
		"ok":            {mutate: func(*UploadRequest) {}, valid: true},
		"too big":       {mutate: func(r *UploadRequest) { r.Size = MaxFileSizeBytes + 1 }},
		"leading slash": {mutate: func(r *UploadRequest) { r.ObjectName = "/avatar.png" }},
		"backslash":     {mutate: func(r *UploadRequest) { r.ObjectName = `u-1\a.png` }},
		"no reader":     {mutate: func(r *UploadRequest) { r.Reader = nil }},
		"no type":       {mutate: func(r *UploadRequest) { r.ContentType = "" }},
		"bad bucket":    {mutate: func(r *UploadRequest) { r.BucketName = "Avatars" }},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := ok
			tc.mutate(&req)
			err := validateUploadRequest(&req)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			var se *StorageError
			assert.True(t, errors.As(err, &se))
			assert.Equal(t, ErrCodeInvalidInput, se.Code)
		})
	}
}

func TestValidateExpiry(t *testing.T) {
	assert.NoError(t, validateExpiry(time.Hour))
	assert.Error(t, validateExpiry(0))
	assert.Error(t, validateExpiry(MaxPresignedExpiry+time.Second))
}

func TestValidateBucketName(t *testing.T) {
	assert.NoError(t, validateBucketName("comment-avatars"))
	assert.Error(t, validateBucketName("ab"))
	assert.Error(t, validateBucketName("Upper"))
	assert.Error(t, validateBucketName("a--b"))
	assert.Error(t, validateBucketName("-abc"))
}

func TestStorageError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := handleMinIOError(cause, "upload_file")

	var se *StorageError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeConnection, se.Code)
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NewObjectNotFoundError("a.png"))))
	assert.NoError(t, handleMinIOError(nil, "x"))
}
