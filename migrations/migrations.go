// Package migrations applies the versioned SQL files in this directory.
// Files are named NNN_name.up.sql and NNN_name.down.sql; versions apply in
// ascending order, each in its own transaction.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"comment-srv/pkg/log"
)

//go:embed *.sql
var files embed.FS

const trackingTable = "public.comment_schema_migrations"

type Migration struct {
	Version string
	Name    string
	Up      string
	Down    string
}

// Load returns every migration sorted by version.
func Load() ([]Migration, error) {
	return load(files)
}

func load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}

	byVersion := map[string]*Migration{}
	for _, file := range names {
		base, direction, ok := splitName(file)
		if !ok {
			return nil, fmt.Errorf("migrations: unexpected file name %q", file)
		}
		version, name, _ := strings.Cut(base, "_")

		body, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		m := byVersion[version]
		if m == nil {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}
		if direction == "up" {
			m.Up = string(body)
		} else {
			m.Down = string(body)
		}
	}

	out := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" {
			return nil, fmt.Errorf("migrations: %s_%s has no up file", m.Version, m.Name)
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

func splitName(file string) (base, direction string, ok bool) {
	if b, found := strings.CutSuffix(file, ".up.sql"); found {
		return b, "up", true
	}
	if b, found := strings.CutSuffix(file, ".down.sql"); found {
		return b, "down", true
	}
	return "", "", false
}

// Up applies every pending migration and returns the versions it applied.
func Up(ctx context.Context, db *sql.DB, l log.Logger) ([]string, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	return up(ctx, db, l, all)
}

func up(ctx context.Context, db *sql.DB, l log.Logger, all []Migration) ([]string, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+trackingTable+` (
		version    TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return nil, fmt.Errorf("migrations: create tracking table: %w", err)
	}

	done, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range all {
		if done[m.Version] {
			continue
		}
		err := inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.Up); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO `+trackingTable+` (version, name) VALUES ($1, $2)`, m.Version, m.Name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("migrations: apply %s_%s: %w", m.Version, m.Name, err)
		}
		l.Infof(ctx, "migrations.Up: applied %s_%s", m.Version, m.Name)
		applied = append(applied, m.Version)
	}
	return applied, nil
}

// Down reverts the latest steps applied migrations, newest first.
func Down(ctx context.Context, db *sql.DB, l log.Logger, steps int) ([]string, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	return down(ctx, db, l, all, steps)
}

func down(ctx context.Context, db *sql.DB, l log.Logger, all []Migration, steps int) ([]string, error) {
	done, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	var reverted []string
	for i := len(all) - 1; i >= 0 && len(reverted) < steps; i-- {
		m := all[i]
		if !done[m.Version] {
			continue
		}
		if m.Down == "" {
			return reverted, fmt.Errorf("migrations: %s_%s is irreversible", m.Version, m.Name)
		}
		err := inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.Down); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `DELETE FROM `+trackingTable+` WHERE version = $1`, m.Version)
			return err
		})
		if err != nil {
			return reverted, fmt.Errorf("migrations: revert %s_%s: %w", m.Version, m.Name, err)
		}
		l.Infof(ctx, "migrations.Down: reverted %s_%s", m.Version, m.Name)
		reverted = append(reverted, m.Version)
	}
	return reverted, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM `+trackingTable)
	if err != nil {
		return nil, fmt.Errorf("migrations: list applied: %w", err)
	}
	defer rows.Close()

	done := map[string]bool{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		done[v] = true
	}
	return done, rows.Err()
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
