package storage

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"pingate/internal/config"
	"pingate/internal/domain/pin"
	"pingate/internal/infrastructure/storage/file"
	"pingate/internal/infrastructure/storage/memory"
	"pingate/internal/infrastructure/storage/natskv"
	"pingate/internal/infrastructure/storage/postgres"
	"pingate/internal/infrastructure/storage/s3kv"
	"pingate/internal/infrastructure/storage/sqlite"
)

// Storage - хранилище PIN вместе с освобождением ресурсов
type Storage interface {
	pin.Store
	io.Closer
}

// Open создает хранилище по storage_driver из конфигурации
func Open(ctx context.Context, cfg config.Storage, log *slog.Logger) (Storage, error) {
	log = log.With(slog.String("component", "storage"), slog.String("driver", cfg.Driver))

	var (
		s   Storage
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		s = memory.New()
	case config.DriverSQLite:
		s, err = sqlite.New(cfg.Path)
	case config.DriverFile:
		s, err = file.New(cfg.Path)
	case config.DriverPostgres:
		var pg *postgres.Storage
		pg, err = postgres.New(ctx, cfg, log)
		if err == nil {
			s = postgres.NewKVRepository(pg, log)
		}
	case config.DriverNATS:
		s, err = natskv.New(ctx, cfg.NATSURL, cfg.NATSBucket)
	case config.DriverS3:
		s, err = s3kv.New(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region, cfg.S3Endpoint)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Driver, err)
	}

	log.Debug("storage opened")
	return s, nil
}
