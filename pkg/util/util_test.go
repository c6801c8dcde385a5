package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomBase36(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-z]{7}$`)
	seen := map[string]bool{}
	for range 100 {
		id := RandomBase36(7)
		assert.Regexp(t, re, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90)
}
