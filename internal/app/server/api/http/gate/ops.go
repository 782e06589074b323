package gate

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) stateOp() huma.Operation {
	return huma.Operation{
		OperationID: "gate-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/gate",
		Summary:     "Текущее состояние гейта",
		Tags:        []string{"gate"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) verifyOp() huma.Operation {
	return huma.Operation{
		OperationID: "gate-verify",
		Method:      http.MethodPost,
		Path:        "/api/v1/gate/verify",
		Summary:     "Ввод PIN",
		Tags:        []string{"gate"},
		Errors:      []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "gate-create-pin",
		Method:      http.MethodPost,
		Path:        "/api/v1/gate/pin",
		Summary:     "Создание или смена PIN",
		Tags:        []string{"gate"},
		Errors:      []int{http.StatusConflict, http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createRequestOp() huma.Operation {
	return huma.Operation{
		OperationID: "gate-create-request",
		Method:      http.MethodPost,
		Path:        "/api/v1/gate/create-request",
		Summary:     "Открыть форму создания PIN",
		Tags:        []string{"gate"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) lockOp() huma.Operation {
	return huma.Operation{
		OperationID: "gate-lock",
		Method:      http.MethodPost,
		Path:        "/api/v1/gate/lock",
		Summary:     "Закрыть гейт",
		Tags:        []string{"gate"},
		Middlewares: h.middleware,
	}
}
