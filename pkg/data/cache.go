// Package data provides the local cache of breach range buckets.
//
// The cache holds only 5-character digest prefixes and the service's
// own public response bodies. Passwords, full digests, and scores are
// never written to disk.
package data

import (
	"database/sql"
	"embed"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// DataFileName is the cache database file name inside the app home dir.
const DataFileName = "cache.db"

//go:embed sql/*
var f embed.FS

// BucketStore caches range-query responses keyed by digest prefix,
// serving entries only within a fixed freshness window. It satisfies
// the breach client's cache interface.
type BucketStore struct {
	db  *sql.DB
	ttl time.Duration
}

// Open opens the cache database at path, creating the schema on first
// use. Entries older than ttl are treated as misses.
func Open(path string, ttl time.Duration) (*BucketStore, error) {
	if path == "" {
		return nil, errors.New("cache path not specified")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open cache database: %s", path)
	}

	b, err := f.ReadFile("sql/ddl.sql")
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to read the schema creation file")
	}
	if _, err := db.Exec(string(b)); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "failed to create cache schema in: %s", path)
	}

	return &BucketStore{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (s *BucketStore) Close() error {
	return s.db.Close()
}

// Get returns the cached bucket body for prefix when present and fresh.
func (s *BucketStore) Get(prefix string) (string, bool) {
	var (
		body    string
		fetched int64
	)
	row := s.db.QueryRow("SELECT body, fetched_at FROM bucket WHERE prefix = ?", prefix)
	if err := row.Scan(&body, &fetched); err != nil {
		return "", false
	}
	if time.Since(time.Unix(fetched, 0)) > s.ttl {
		return "", false
	}
	return body, true
}

// Put stores the bucket body for prefix, replacing any previous entry.
func (s *BucketStore) Put(prefix, body string) error {
	_, err := s.db.Exec(`INSERT INTO bucket (prefix, body, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT (prefix) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		prefix, body, time.Now().Unix())
	return errors.Wrapf(err, "failed to cache bucket: %s", prefix)
}
