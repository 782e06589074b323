package gate

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"pingate/internal/domain/pin"
)

type Handler struct {
	gate       pin.Gater
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(gate pin.Gater, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		gate:       gate,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.stateOp(), h.state)
	huma.Register(api, h.verifyOp(), h.verify)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.createRequestOp(), h.createRequest)
	huma.Register(api, h.lockOp(), h.lock)
}

func (h *Handler) state(_ context.Context, _ *stateInput) (*stateOutput, error) {
	return &stateOutput{Body: fromDomain(h.gate.State())}, nil
}

func (h *Handler) verify(ctx context.Context, input *verifyInput) (*stateOutput, error) {
	s, err := h.gate.SubmitPin(ctx, input.Body.Pin, pin.ModeVerify, "")
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &stateOutput{Body: fromDomain(s)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*stateOutput, error) {
	s, err := h.gate.SubmitPin(ctx, input.Body.Pin, pin.ModeCreate, input.Body.Confirmation)
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &stateOutput{Body: fromDomain(s)}, nil
}

func (h *Handler) createRequest(_ context.Context, _ *stateInput) (*stateOutput, error) {
	return &stateOutput{Body: fromDomain(h.gate.RequestCreate())}, nil
}

func (h *Handler) lock(ctx context.Context, _ *stateInput) (*stateOutput, error) {
	return &stateOutput{Body: fromDomain(h.gate.Lock(ctx))}, nil
}

// toHTTPError переводит ошибки гейта в ответы API. Причина кладется
// в details, чтобы клиент мог показать свой текст.
func (h *Handler) toHTTPError(err error) error {
	var ve *pin.ValidationError
	if errors.As(err, &ve) {
		return huma.Error422UnprocessableEntity(ve.Error(), &huma.ErrorDetail{
			Location: "body.pin",
			Message:  ve.Reason,
		})
	}

	var ae *pin.AuthError
	if errors.As(err, &ae) {
		detail := &huma.ErrorDetail{Location: "body.pin", Message: ae.Reason}
		if ae.Reason == pin.ReasonLocked {
			return huma.Error409Conflict(ae.Error(), detail)
		}
		return huma.Error401Unauthorized(ae.Error(), detail)
	}

	if errors.Is(err, pin.ErrStorageUnavailable) {
		h.log.Error("pin storage unavailable", "error", err)
		return huma.Error503ServiceUnavailable("pin storage unavailable")
	}

	h.log.Error("unexpected gate error", "error", err)
	return huma.Error500InternalServerError("internal error")
}
