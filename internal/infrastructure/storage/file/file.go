package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"pingate/internal/domain/pin"
)

const filePermissions = 0600

type document struct {
	Values map[string]string `toml:"values"`
}

// Storage хранит значения в одном TOML файле. Файл перечитывается на
// каждый Get, чтобы видеть изменения из других процессов.
type Storage struct {
	path string
	mu   sync.Mutex
}

func New(path string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{path: path}, nil
}

func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", err
	}

	value, ok := doc.Values[key]
	if !ok {
		return "", pin.ErrNotFound
	}
	return value, nil
}

func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Values[key] = value

	return s.save(doc)
}

func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.Get(ctx, key)
	if errors.Is(err, pin.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) load() (document, error) {
	doc := document{Values: map[string]string{}}

	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if doc.Values == nil {
		doc.Values = map[string]string{}
	}

	return doc, nil
}

// save пишет во временный файл и переименовывает его поверх старого
func (s *Storage) save(doc document) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".storage-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if err := tmp.Chmod(filePermissions); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}
