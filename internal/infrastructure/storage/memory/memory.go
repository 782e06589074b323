package memory

import (
	"context"
	"sync"

	"pingate/internal/domain/pin"
)

// Storage - in-memory хранилище, живет до завершения процесса
type Storage struct {
	mu     sync.RWMutex
	values map[string]string
}

func New() *Storage {
	return &Storage{
		values: make(map[string]string),
	}
}

func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", pin.ErrNotFound
	}
	return value, nil
}

func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Storage) Has(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.values[key]
	return ok, nil
}

func (s *Storage) Close() error {
	return nil
}
