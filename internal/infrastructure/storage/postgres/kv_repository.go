package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"

	"pingate/internal/domain/pin"
)

// dbtx - подмножество pgxpool.Pool, которое нужно репозиторию
type dbtx interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// KVRepository хранит значения в таблице kv_store
type KVRepository struct {
	db     dbtx
	closer func()
	log    *slog.Logger
}

func NewKVRepository(storage *Storage, log *slog.Logger) *KVRepository {
	return &KVRepository{
		db:     storage.Pool(),
		closer: storage.pool.Close,
		log:    log.With(slog.String("component", "postgres_kv")),
	}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", pin.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}

	return value, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
         ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	r.log.Debug("value stored", slog.String("key", key), slog.Int64("rows", tag.RowsAffected()))

	return nil
}

func (r *KVRepository) Has(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM kv_store WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has %s: %w", key, err)
	}

	return exists, nil
}

func (r *KVRepository) Close() error {
	if r.closer != nil {
		r.closer()
	}
	return nil
}
