package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"
	"pingate/internal/config"
)

// New создает логгер под окружение: local - цветной вывод в stderr,
// dev и prod - JSON. level (LOG_LEVEL) задает минимальный уровень;
// если он пустой или не распознан, берется уровень окружения:
// DEBUG для local и dev, INFO для prod.
func New(env, level string) *slog.Logger {
	lvl, ok := parseLevel(level)
	if !ok {
		lvl = envLevel(env)
	}

	switch env {
	case config.EnvDev, config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	default:
		return setupPrettySlog(lvl)
	}
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}

	return slog.New(opts.NewPrettyHandler(os.Stderr))
}

func envLevel(env string) slog.Level {
	if env == config.EnvProd {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

func parseLevel(level string) (slog.Level, bool) {
	if strings.TrimSpace(level) == "" {
		return 0, false
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, false
	}
	return lvl, true
}
