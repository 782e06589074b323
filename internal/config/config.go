package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverFile     = "file"
	DriverNATS     = "nats"
	DriverS3       = "s3"

	defaultEnv        = EnvLocal
	defaultLogLevel   = "info"
	defaultRunAddress = "localhost:8080"
	defaultConfigDir  = ".pingate"
	defaultDriver     = DriverSQLite
	defaultPinKey     = "pin_code"
	defaultPinHash    = "argon2id"
	defaultPinDefault = "123456"
	defaultNATSBucket = "pingate"
	defaultS3Prefix   = "pingate/"
	defaultS3Region   = "us-east-1"
)

type Config struct {
	Env     string
	Logger  Logger
	Server  Server
	Storage Storage
	Gate    Gate
}

type Logger struct {
	LogLevel string
}

type Server struct {
	RunAddress string
}

type Storage struct {
	Driver      string
	Path        string
	DatabaseURI string
	Migrations  string
	NATSURL     string
	NATSBucket  string
	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
}

type Gate struct {
	Key         string
	HashAlgo    string
	Fallback    string
	MaxAttempts int
}

// Load читает конфигурацию из .env, файла конфигурации и переменных окружения.
// cfgFile может быть пустым, тогда файл ищется в ~/.pingate и текущей директории.
func Load(cfgFile string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Join(homeDir, defaultConfigDir))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	configDir := v.GetString("config_dir")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	storagePath := v.GetString("storage_path")
	if storagePath == "" {
		storagePath = defaultStoragePath(configDir, v.GetString("storage_driver"))
	}

	cfg := &Config{
		Env:    v.GetString("app_env"),
		Logger: Logger{LogLevel: v.GetString("log_level")},
		Server: Server{RunAddress: v.GetString("run_address")},
		Storage: Storage{
			Driver:      v.GetString("storage_driver"),
			Path:        storagePath,
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
			NATSURL:     v.GetString("nats_url"),
			NATSBucket:  v.GetString("nats_bucket"),
			S3Bucket:    v.GetString("s3_bucket"),
			S3Prefix:    v.GetString("s3_prefix"),
			S3Region:    v.GetString("s3_region"),
			S3Endpoint:  v.GetString("s3_endpoint"),
		},
		Gate: Gate{
			Key:         v.GetString("pin_key"),
			HashAlgo:    v.GetString("pin_hash"),
			Fallback:    v.GetString("pin_default"),
			MaxAttempts: v.GetInt("pin_max_attempts"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad загружает конфигурацию и паникует при ошибке
func MustLoad(cfgFile string) *Config {
	cfg, err := Load(cfgFile)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func loadDotEnv() {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("config_dir", defaultConfigDir)
	v.SetDefault("storage_driver", defaultDriver)
	v.SetDefault("migrations_path", "")
	v.SetDefault("nats_bucket", defaultNATSBucket)
	v.SetDefault("s3_prefix", defaultS3Prefix)
	v.SetDefault("s3_region", defaultS3Region)
	v.SetDefault("pin_key", defaultPinKey)
	v.SetDefault("pin_hash", defaultPinHash)
	v.SetDefault("pin_default", defaultPinDefault)
	v.SetDefault("pin_max_attempts", 3)
}

func defaultStoragePath(configDir, driver string) string {
	switch driver {
	case DriverSQLite:
		return filepath.Join(configDir, "pingate.db")
	case DriverFile:
		return filepath.Join(configDir, "storage.toml")
	}
	return ""
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown app_env %q", c.Env)
	}

	// пустой log_level означает уровень окружения
	if c.Logger.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Logger.LogLevel)); err != nil {
			return fmt.Errorf("unknown log_level %q", c.Logger.LogLevel)
		}
	}

	if c.Gate.Key == "" {
		return fmt.Errorf("pin_key не может быть пустым")
	}
	if c.Gate.MaxAttempts < 0 {
		return fmt.Errorf("pin_max_attempts не может быть отрицательным")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage_path не может быть пустым для %s", c.Storage.Driver)
		}
	case DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			return fmt.Errorf("database_uri не может быть пустым")
		}
	case DriverNATS:
		if c.Storage.NATSURL == "" {
			return fmt.Errorf("nats_url не может быть пустым")
		}
	case DriverS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("s3_bucket не может быть пустым")
		}
	default:
		return fmt.Errorf("unknown storage_driver %q", c.Storage.Driver)
	}

	return nil
}
