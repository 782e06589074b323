package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pingate/internal/domain/pin"
)

type Storage struct {
	db *sql.DB
}

// New открывает файл базы, создавая директорию при первом запуске
func New(path string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	storage, err := NewFromDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

// NewFromDB оборачивает уже открытое соединение и создает таблицу
func NewFromDB(db *sql.DB) (*Storage, error) {
	storage := &Storage{db: db}

	if err := storage.initTables(); err != nil {
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)

	return err
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", pin.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM kv_store WHERE key = ?)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has %s: %w", key, err)
	}

	return exists, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
