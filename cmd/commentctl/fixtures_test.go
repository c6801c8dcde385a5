package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"comment-srv/config"
	"comment-srv/internal/model"
	pkgJWT "comment-srv/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtures(t *testing.T) {
	fx, err := loadFixtures("testdata/fixtures.yaml")
	require.NoError(t, err)

	require.Len(t, fx.Posts, 1)
	require.Len(t, fx.Comments, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, model.CommentIDs(fx.Comments))
	assert.Equal(t, 2, fx.Comments[2].Position)
	assert.Equal(t, model.CategoryGeneral, fx.Comments[2].Category)
	assert.Equal(t, "Mike Chen", fx.Comments[1].Author.Name)
	assert.True(t, fx.Comments[1].NeedsAttention)
}

func TestParseFixtures_Invalid(t *testing.T) {
	_, err := parseFixtures([]byte("comments: [unterminated"))
	assert.Error(t, err)
}

func TestBuildCriteria(t *testing.T) {
	tcs := map[string]struct {
		status    string
		platforms []string
		wantErr   bool
	}{
		"defaults":         {status: "all"},
		"flagged youtube":  {status: "flagged", platforms: []string{"youtube"}},
		"unknown status":   {status: "pinned", wantErr: true},
		"unknown platform": {status: "all", platforms: []string{"myspace"}, wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			filterFlags.status = tc.status
			filterFlags.platforms = tc.platforms
			t.Cleanup(func() {
				filterFlags.status = string(model.StatusAll)
				filterFlags.platforms = nil
			})

			c, err := buildCriteria()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.Status(tc.status), c.Status)
			assert.Len(t, c.Platforms, len(tc.platforms))
		})
	}
}

func TestPrintFiltered(t *testing.T) {
	fx, err := loadFixtures("testdata/fixtures.yaml")
	require.NoError(t, err)

	criteria := model.DefaultFilterCriteria()
	criteria.Status = model.StatusFlagged

	var buf bytes.Buffer
	require.NoError(t, printFiltered(&buf, fx.Comments, criteria))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "c2\t"))
	assert.True(t, strings.HasPrefix(lines[1], "c3\t"))
	assert.Equal(t, "2 of 3 comments", lines[2])
}

func TestMintToken(t *testing.T) {
	cfg := config.JWTConfig{SecretKey: "0123456789abcdef0123456789abcdef", Issuer: "smap-auth-service", Audience: []string{"comment-srv"}}

	tok, err := mintToken(cfg, "u-1", "acme", "USER", time.Minute)
	require.NoError(t, err)

	m, err := pkgJWT.New(pkgJWT.Config{SecretKey: cfg.SecretKey, Issuer: cfg.Issuer, Audience: cfg.Audience})
	require.NoError(t, err)
	p, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)

	_, err = mintToken(config.JWTConfig{SecretKey: "short"}, "u-1", "", "USER", time.Minute)
	assert.Error(t, err)
}
