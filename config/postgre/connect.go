package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	"comment-srv/config"

	_ "github.com/lib/pq"
)

const (
	connectTimeout  = 5 * time.Second
	maxOpenConns    = 50
	maxIdleConns    = 10
	connMaxLifetime = 30 * time.Minute
	connMaxIdleTime = 5 * time.Minute
)

var (
	db *sql.DB
	mu sync.Mutex
)

// DSN renders cfg as a postgres:// URL. Schema becomes the search_path so
// repositories can use unqualified table names.
func DSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	if cfg.Schema != "" {
		q.Set("search_path", cfg.Schema)
	}
	q.Set("connect_timeout", fmt.Sprint(int(connectTimeout.Seconds())))
	q.Set("application_name", "comment-srv")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Connect opens the shared pool and pings it. A failed attempt is not cached.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		return db, nil
	}

	pool, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxIdleConns)
	pool.SetConnMaxLifetime(connMaxLifetime)
	pool.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("postgres %s:%d/%s unreachable: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}

	db = pool
	return db, nil
}

// Disconnect closes conn and forgets the shared pool when conn is it.
func Disconnect(conn *sql.DB) error {
	mu.Lock()
	defer mu.Unlock()

	if conn == nil {
		return nil
	}
	if conn == db {
		db = nil
	}
	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	return nil
}
