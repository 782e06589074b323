package pin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"
)

// Gater - операции гейта, которые вызывают CLI и HTTP слой
type Gater interface {
	Initialize(ctx context.Context) GateState
	SubmitPin(ctx context.Context, candidate string, mode Mode, confirmation string) (GateState, error)
	RequestCreate() GateState
	Lock(ctx context.Context) GateState
	State() GateState
}

// Options - параметры гейта, приходят из конфигурации
type Options struct {
	Key      string
	Fallback string
}

// Gate закрывает приложение, пока не введен сохраненный PIN
type Gate struct {
	store     Store
	hasher    Hasher
	validator Validator
	opts      Options
	log       *slog.Logger

	mu    sync.RWMutex
	state GateState
}

func NewGate(store Store, hasher Hasher, validator Validator, opts Options, log *slog.Logger) *Gate {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	return &Gate{
		store:     store,
		hasher:    hasher,
		validator: validator,
		opts:      opts,
		log:       log.With(slog.String("component", "pin_gate")),
		state:     GateState{Prompt: PromptNone},
	}
}

// Initialize пересчитывает состояние по наличию PIN в хранилище.
// Если хранилище недоступно, гейт открывается.
func (g *Gate) Initialize(ctx context.Context) GateState {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := g.store.Get(ctx, g.opts.Key)
	switch {
	case err == nil:
		g.state = GateState{Authenticated: false, PinRecordExists: true, Prompt: PromptEnter}
	case errors.Is(err, ErrNotFound):
		g.state = GateState{Authenticated: true, PinRecordExists: false, Prompt: PromptNone}
	default:
		g.log.Warn("storage read failed, gate opened", "error", err)
		g.state = GateState{Authenticated: true, PinRecordExists: false, Prompt: PromptNone}
	}

	g.log.Debug("gate initialized",
		slog.Bool("authenticated", g.state.Authenticated),
		slog.Bool("pin_record_exists", g.state.PinRecordExists),
	)

	return g.state
}

// RequestCreate переводит форму в режим создания PIN. Аутентификация не меняется.
func (g *Gate) RequestCreate() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Authenticated {
		g.state.Prompt = PromptCreate
	}
	return g.state
}

// Lock закрывает гейт заново, если PIN задан
func (g *Gate) Lock(ctx context.Context) GateState {
	return g.Initialize(ctx)
}

func (g *Gate) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// SubmitPin проверяет или создает PIN. При ошибке состояние не меняется.
func (g *Gate) SubmitPin(ctx context.Context, candidate string, mode Mode, confirmation string) (GateState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validator.ValidateLength(candidate); err != nil {
		return g.state, err
	}

	switch mode {
	case ModeCreate:
		return g.create(ctx, candidate, confirmation)
	case ModeVerify:
		return g.verify(ctx, candidate)
	default:
		return g.state, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func (g *Gate) create(ctx context.Context, candidate, confirmation string) (GateState, error) {
	if g.state.PinRecordExists && !g.state.Authenticated {
		return g.state, &AuthError{Reason: ReasonLocked}
	}

	if err := g.validator.ValidateCreate(candidate, confirmation); err != nil {
		g.log.Debug("pin validation failed", "error", err)
		return g.state, err
	}

	encoded, err := g.hasher.Hash(candidate)
	if err != nil {
		return g.state, fmt.Errorf("hash pin: %w", err)
	}

	if err := g.store.Set(ctx, g.opts.Key, encoded); err != nil {
		g.log.Error("storage write failed", "error", err)
		return g.state, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	g.state = GateState{Authenticated: true, PinRecordExists: true, Prompt: PromptNone}
	g.log.Info("pin saved")

	return g.state, nil
}

func (g *Gate) verify(ctx context.Context, candidate string) (GateState, error) {
	stored, err := g.store.Get(ctx, g.opts.Key)
	switch {
	case err == nil:
		ok, verr := g.hasher.Verify(candidate, stored)
		if verr != nil {
			g.log.Warn("stored pin is unreadable", "error", verr)
		}
		if !ok {
			return g.state, &AuthError{Reason: ReasonIncorrectPin}
		}
	case errors.Is(err, ErrNotFound):
		if g.opts.Fallback == "" ||
			subtle.ConstantTimeCompare([]byte(candidate), []byte(g.opts.Fallback)) != 1 {
			return g.state, &AuthError{Reason: ReasonIncorrectPin}
		}
	default:
		g.log.Warn("storage read failed, gate opened", "error", err)
	}

	g.state.Authenticated = true
	g.state.PinRecordExists = err == nil
	g.state.Prompt = PromptNone
	g.log.Info("gate unlocked")

	return g.state, nil
}
