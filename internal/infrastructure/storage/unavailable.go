package storage

import (
	"context"
	"fmt"
)

// Unavailable подменяет хранилище, которое не удалось открыть. Любая
// операция возвращает исходную ошибку, поэтому гейт открывается при
// чтении, а запись PIN завершается ошибкой недоступности.
type Unavailable struct {
	cause error
}

func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{cause: cause}
}

func (u *Unavailable) Get(_ context.Context, key string) (string, error) {
	return "", fmt.Errorf("get %s: %w", key, u.cause)
}

func (u *Unavailable) Set(_ context.Context, key, _ string) error {
	return fmt.Errorf("set %s: %w", key, u.cause)
}

func (u *Unavailable) Has(_ context.Context, key string) (bool, error) {
	return false, fmt.Errorf("has %s: %w", key, u.cause)
}

func (u *Unavailable) Close() error {
	return nil
}
