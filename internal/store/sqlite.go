package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/jmoiron/sqlx"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteSurface keeps values in a kv table of a SQLite database
type SQLiteSurface struct {
	db  *sqlx.DB
	log logr.Logger
}

var _ Surface = (*SQLiteSurface)(nil)

// NewSQLiteSurface opens (and creates if needed) the database at path
func NewSQLiteSurface(log logr.Logger, path string) (*SQLiteSurface, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", "file:"+path)
	if err != nil {
		log.Error(err, "Failed to connect to database", "dbType", "sqlite3", "dbName", path)
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// One writer at a time keeps SQLite from reporting busy
	db.SetMaxOpenConns(1)

	s := &SQLiteSurface{
		db:  db,
		log: log.WithName("SQLiteSurface"),
	}
	if err := s.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteSurface) createTable() error {
	schema := `
    CREATE TABLE IF NOT EXISTS kv (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at INTEGER NOT NULL
    );
`
	if _, err := s.db.Exec(schema); err != nil {
		s.log.Error(err, "Failed to execute create table query")
		return fmt.Errorf("creating kv table: %w", err)
	}
	return nil
}

// Get returns the value stored under key
func (s *SQLiteSurface) Get(key string) ([]byte, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// Set upserts value under key
func (s *SQLiteSurface) Set(key string, value []byte) error {
	query := `
    INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
    ON CONFLICT(key) DO UPDATE SET
        value = excluded.value,
        updated_at = excluded.updated_at
`
	_, err := s.db.Exec(query, key, string(value), time.Now().UnixMilli())
	return err
}

// Close closes the database connection
func (s *SQLiteSurface) Close() error {
	s.log.V(1).Info("Closing database connection")
	return s.db.Close()
}
