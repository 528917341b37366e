package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS resolutions (
	resolved_at  TIMESTAMP NOT NULL,
	strategy     VARCHAR NOT NULL,
	folder       VARCHAR NOT NULL,
	total_comics INTEGER NOT NULL,
	elapsed_ms   BIGINT NOT NULL,
	error        VARCHAR NOT NULL DEFAULT ''
)`

func InitDuckDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository journals catalog resolutions.
type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) SaveResolution(res *Resolution) error {
	if res == nil {
		return fmt.Errorf("resolution cannot be nil")
	}
	resolvedAt := res.ResolvedAt
	if resolvedAt.IsZero() {
		resolvedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO resolutions (resolved_at, strategy, folder, total_comics, elapsed_ms, error) VALUES (?, ?, ?, ?, ?, ?)`,
		resolvedAt.UTC(), res.Strategy, res.Folder, res.TotalComics, res.Elapsed.Milliseconds(), res.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to save resolution: %w", err)
	}
	return nil
}

// ListResolutions returns the most recent resolutions first. A limit of zero
// or less returns all of them.
func (r *Repository) ListResolutions(limit int) ([]*Resolution, error) {
	query := `SELECT resolved_at, strategy, folder, total_comics, elapsed_ms, error FROM resolutions ORDER BY resolved_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resolutions: %w", err)
	}
	defer rows.Close()

	var out []*Resolution
	for rows.Next() {
		res, err := scanResolution(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// LastResolution returns the latest resolution of folder, or nil when the
// folder was never resolved.
func (r *Repository) LastResolution(folder string) (*Resolution, error) {
	rows, err := r.db.Query(
		`SELECT resolved_at, strategy, folder, total_comics, elapsed_ms, error FROM resolutions WHERE folder = ? ORDER BY resolved_at DESC LIMIT 1`,
		folder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolution: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanResolution(rows)
}

func scanResolution(rows *sql.Rows) (*Resolution, error) {
	var (
		res       Resolution
		elapsedMS int64
	)
	if err := rows.Scan(&res.ResolvedAt, &res.Strategy, &res.Folder, &res.TotalComics, &elapsedMS, &res.Error); err != nil {
		return nil, fmt.Errorf("failed to scan resolution: %w", err)
	}
	res.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return &res, nil
}
