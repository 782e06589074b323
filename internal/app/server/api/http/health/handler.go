package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Prober проверяет доступность хранилища
type Prober interface {
	Has(ctx context.Context, key string) (bool, error)
}

type Handler struct {
	storage    Prober
	key        string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage Prober, key string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		key:        key,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

// healthCheck всегда отвечает OK: гейт открывается при недоступном хранилище,
// поэтому сервис остается рабочим
func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	storage := "ok"
	if _, err := h.storage.Has(ctx, h.key); err != nil {
		h.log.Warn("storage probe failed", "error", err)
		storage = "unavailable"
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: storage,
		},
	}, nil
}
