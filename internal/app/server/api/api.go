//GET  /api/v1/health              # Состояние сервиса и хранилища
//GET  /api/v1/gate                # Текущее состояние гейта
//POST /api/v1/gate/verify         # Ввод PIN
//POST /api/v1/gate/pin            # Создание или смена PIN
//POST /api/v1/gate/create-request # Открыть форму создания
//POST /api/v1/gate/lock           # Закрыть гейт

package api

import (
	gateAPI "pingate/internal/app/server/api/http/gate"
	healthAPI "pingate/internal/app/server/api/http/health"
	"pingate/internal/app/server/api/http/middleware"
	"pingate/internal/app/server/api/http/middleware/logger"
	"pingate/internal/app/server/api/http/middleware/requestid"
	"pingate/internal/domain/pin"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Gate   *gateAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(gate pin.Gater, storage healthAPI.Prober, key string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("PinGate API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(gate, storage, key, log)
	h.Health.SetupRoutes(API)
	h.Gate.SetupRoutes(API)

	return mux
}

func handlers(gate pin.Gater, storage healthAPI.Prober, key string, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	chain := middleware.NewChain(requestid.Middleware(), loggerMW.Middleware())

	return &Handlers{
		Health: healthAPI.NewHandler(storage, key, log, chain.With()),
		Gate:   gateAPI.NewHandler(gate, log, chain.With()),
	}
}
