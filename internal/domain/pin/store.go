package pin

import "context"

// Store - строковое key-value хранилище. Get возвращает ErrNotFound,
// если ключа нет; любая другая ошибка считается недоступностью хранилища.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Has(ctx context.Context, key string) (bool, error)
}

// Hasher кодирует PIN перед записью и сверяет кандидата с сохраненным значением
type Hasher interface {
	Hash(pin string) (string, error)
	Verify(pin, stored string) (bool, error)
}
