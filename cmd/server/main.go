package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"pingate/internal/app"
	"pingate/internal/app/server/api"
	"pingate/internal/config"
	"pingate/internal/utils/logger"
)

func main() {
	cfgFile := flag.String("config", "", "конфигурационный файл")
	flag.Parse()

	conf := config.MustLoad(*cfgFile)
	log := logger.New(conf.Env, conf.Logger.LogLevel)

	ctx := context.Background()
	core, err := app.Build(ctx, conf, log)
	if err != nil {
		log.Error("failed to build app", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := core.Close(); err != nil {
			log.Error("error closing storage", "error", err)
		}
	}()

	state := core.Gate.Initialize(ctx)
	log.Info("gate initialized",
		slog.Bool("authenticated", state.Authenticated),
		slog.String("storage", conf.Storage.Driver),
	)

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(core.Gate, core.Storage, conf.Gate.Key, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", conf.Server.RunAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("received signal, shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}
	log.Info("shutdown complete")
}
