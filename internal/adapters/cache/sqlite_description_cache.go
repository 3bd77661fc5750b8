package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oboratav/yk-proxy/internal/platform/obs"
)

// SQLite backed cache for carrier service descriptions, keyed by their
// URL. Descriptions change rarely; caching them keeps process startup off
// the carrier's network path.
type SqliteDescriptionCache struct {
	DB *sql.DB
}

func NewSqliteDescriptionCache(db *sql.DB) *SqliteDescriptionCache {
	return &SqliteDescriptionCache{DB: db}
}

// InitSchema creates the cache table when it does not exist yet.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("description cache: db is nil")
	}

	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS service_descriptions (
        url        TEXT PRIMARY KEY,
        document   TEXT NOT NULL,
        fetched_at TIMESTAMP NOT NULL
    );
	`)
	if err != nil {
		return fmt.Errorf("init description cache schema: %w", err)
	}

	return nil
}

// Retrieve a cached description by URL.
func (s *SqliteDescriptionCache) Get(ctx context.Context, url string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "descriptions.cache.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("description cache: db is nil")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return "", false, errors.New("description cache: url is empty")
	}

	var doc string
	row := s.DB.QueryRowContext(ctx, `
	SELECT document
    FROM service_descriptions
    WHERE url = ?;
	`, url)

	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get description cache: scan row: %w", err)
	}

	return doc, true, nil
}

// Store a description under its URL, replacing any previous copy.
func (s *SqliteDescriptionCache) Put(ctx context.Context, url string, document string) error {
	if s.DB == nil {
		return errors.New("description cache: db is nil")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("description cache: url is empty")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO service_descriptions (
        url,
        document,
        fetched_at
    )
    VALUES (?, ?, ?);
	`, url, document, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert description cache url=%q: %w", url, err)
	}

	return nil
}
