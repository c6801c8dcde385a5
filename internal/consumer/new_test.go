package consumer

import (
	"testing"

	"comment-srv/config"
	"comment-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportsAllMissingDependencies(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), Config: &config.Config{}})
	require.Error(t, err)

	for _, want := range []string{
		"kafka brokers is required",
		"redis client is required",
		"postgres db is required",
		"minio client is required",
		"kafka producer is required",
		"encrypter is required",
	} {
		assert.Contains(t, err.Error(), want)
	}
	assert.NotContains(t, err.Error(), "logger is required")
}

func TestNewWithoutConfig(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger is required")
	assert.Contains(t, err.Error(), "config is required")
	assert.NotContains(t, err.Error(), "kafka brokers")
}
