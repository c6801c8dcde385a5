package postgre

import (
	"net/url"
	"testing"

	"comment-srv/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.PostgresConfig{
		Host: "db", Port: 5432, User: "smap", Password: "p@ss word", DBName: "smap", Schema: "comment",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/smap", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss word", pw)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "comment", u.Query().Get("search_path"))

	dsn = DSN(config.PostgresConfig{Host: "db", Port: 5432, SSLMode: "require"})
	u, err = url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.False(t, u.Query().Has("search_path"))
}
