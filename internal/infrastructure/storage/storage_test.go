package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingate/internal/config"
	"pingate/internal/domain/pin"
	"pingate/internal/infrastructure/storage/file"
	"pingate/internal/infrastructure/storage/memory"
	"pingate/internal/infrastructure/storage/sqlite"
	"pingate/internal/utils/logger"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		cfg      config.Storage
		expected any
	}{
		{
			name:     "memory",
			cfg:      config.Storage{Driver: config.DriverMemory},
			expected: &memory.Storage{},
		},
		{
			name:     "sqlite",
			cfg:      config.Storage{Driver: config.DriverSQLite, Path: filepath.Join(dir, "pingate.db")},
			expected: &sqlite.Storage{},
		},
		{
			name:     "file",
			cfg:      config.Storage{Driver: config.DriverFile, Path: filepath.Join(dir, "storage.toml")},
			expected: &file.Storage{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, err := Open(ctx, tt.cfg, logger.Discard())
			require.NoError(t, err)
			defer s.Close()

			assert.IsType(t, tt.expected, s)

			require.NoError(t, s.Set(ctx, pin.DefaultKey, "999999"))
			value, err := s.Get(ctx, pin.DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, "999999", value)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Storage{Driver: "redis"}, logger.Discard())
	assert.Error(t, err)
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("no servers available for connection")
	s := NewUnavailable(cause)

	_, err := s.Get(ctx, pin.DefaultKey)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, pin.ErrNotFound)

	_, err = s.Has(ctx, pin.DefaultKey)
	assert.ErrorIs(t, err, cause)

	assert.ErrorIs(t, s.Set(ctx, pin.DefaultKey, "123456"), cause)
	assert.NoError(t, s.Close())
}
