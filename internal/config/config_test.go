package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(home, ".pingate", "pingate.db"), cfg.Storage.Path)
	assert.Equal(t, "pin_code", cfg.Gate.Key)
	assert.Equal(t, "argon2id", cfg.Gate.HashAlgo)
	assert.Equal(t, "123456", cfg.Gate.Fallback)
	assert.Equal(t, 3, cfg.Gate.MaxAttempts)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("STORAGE_DRIVER", DriverMemory)
	t.Setenv("PIN_HASH", "plain")
	t.Setenv("PIN_DEFAULT", "")
	t.Setenv("RUN_ADDRESS", ":9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "plain", cfg.Gate.HashAlgo)
	assert.Equal(t, "", cfg.Gate.Fallback)
	assert.Equal(t, ":9090", cfg.Server.RunAddress)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "pingate.yaml")
	content := "storage_driver: file\nstorage_path: " + filepath.Join(dir, "kv.toml") + "\npin_max_attempts: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(dir, "kv.toml"), cfg.Storage.Path)
	assert.Equal(t, 5, cfg.Gate.MaxAttempts)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"APP_ENV": "staging"}},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "redis"}},
		{name: "postgres without uri", env: map[string]string{"STORAGE_DRIVER": DriverPostgres}},
		{name: "nats without url", env: map[string]string{"STORAGE_DRIVER": DriverNATS}},
		{name: "s3 without bucket", env: map[string]string{"STORAGE_DRIVER": DriverS3}},
		{name: "negative attempts", env: map[string]string{"PIN_MAX_ATTEMPTS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestMustLoad_Panics(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STORAGE_DRIVER", "redis")

	assert.Panics(t, func() { MustLoad("") })
}

func TestLoad_LogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STORAGE_DRIVER", DriverMemory)

	t.Setenv("LOG_LEVEL", "warn")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)

	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}
