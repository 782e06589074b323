package app

import (
	"context"

	"golang.org/x/exp/slog"

	"pingate/internal/app/crypto"
	"pingate/internal/config"
	"pingate/internal/domain/pin"
	"pingate/internal/infrastructure/storage"
)

// Core - гейт вместе с хранилищем, общий для CLI и HTTP сервера
type Core struct {
	Gate    *pin.Gate
	Storage storage.Storage
}

// Build открывает хранилище из конфигурации и собирает гейт
func Build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Core, error) {
	hasher, err := crypto.NewHasher(cfg.Gate.HashAlgo)
	if err != nil {
		return nil, err
	}

	// Недоступное хранилище не останавливает запуск: гейт откроется
	// при Initialize, а запись PIN вернет ErrStorageUnavailable
	var s storage.Storage
	s, err = storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Warn("storage unavailable, gate will fail open",
			slog.String("driver", cfg.Storage.Driver),
			slog.String("error", err.Error()),
		)
		s = storage.NewUnavailable(err)
	}

	gate := pin.NewGate(s, hasher, pin.NewDigitsValidator(), pin.Options{
		Key:      cfg.Gate.Key,
		Fallback: cfg.Gate.Fallback,
	}, log)

	return &Core{Gate: gate, Storage: s}, nil
}

func (c *Core) Close() error {
	return c.Storage.Close()
}
