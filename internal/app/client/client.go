package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"pingate/internal/domain/pin"
)

var ErrTooManyAttempts = errors.New("too many attempts")

// PinReader читает PIN без эха (терминал) или из заготовленного источника в тестах
type PinReader interface {
	ReadPin(prompt string) (string, error)
}

// App - интерактивная форма поверх гейта. Пока гейт закрыт, Unlock
// не возвращает управление, кроме как по ошибке ввода или лимиту попыток.
type App struct {
	gate        pin.Gater
	reader      PinReader
	out         io.Writer
	maxAttempts int
	log         *slog.Logger
}

func New(gate pin.Gater, reader PinReader, out io.Writer, maxAttempts int, log *slog.Logger) *App {
	return &App{
		gate:        gate,
		reader:      reader,
		out:         out,
		maxAttempts: maxAttempts,
		log:         log.With(slog.String("component", "cli")),
	}
}

// Status пересчитывает состояние гейта
func (a *App) Status(ctx context.Context) pin.GateState {
	return a.gate.Initialize(ctx)
}

// Unlock запрашивает PIN, пока он не подойдет. maxAttempts == 0 - без лимита.
func (a *App) Unlock(ctx context.Context) (pin.GateState, error) {
	state := a.gate.Initialize(ctx)

	for attempt := 1; state.Locked(); attempt++ {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		candidate, err := a.reader.ReadPin("Введите PIN: ")
		if err != nil {
			return state, fmt.Errorf("ошибка чтения PIN: %w", err)
		}

		state, err = a.gate.SubmitPin(ctx, candidate, pin.ModeVerify, "")
		if err == nil {
			break
		}

		a.printError(err)
		if a.maxAttempts > 0 && attempt >= a.maxAttempts {
			a.log.Warn("unlock attempts exhausted", slog.Int("attempts", attempt))
			return state, ErrTooManyAttempts
		}
	}

	return state, nil
}

// SetPin запускает создание PIN: PIN и подтверждение вводятся дважды
func (a *App) SetPin(ctx context.Context) (pin.GateState, error) {
	state := a.gate.RequestCreate()
	if state.Locked() {
		return state, &pin.AuthError{Reason: pin.ReasonLocked}
	}

	for attempt := 1; ; attempt++ {
		candidate, err := a.reader.ReadPin("Новый PIN (6-20 цифр): ")
		if err != nil {
			return state, fmt.Errorf("ошибка чтения PIN: %w", err)
		}
		confirmation, err := a.reader.ReadPin("Повторите PIN: ")
		if err != nil {
			return state, fmt.Errorf("ошибка чтения PIN: %w", err)
		}

		state, err = a.gate.SubmitPin(ctx, candidate, pin.ModeCreate, confirmation)
		if err == nil {
			return state, nil
		}
		if errors.Is(err, pin.ErrStorageUnavailable) {
			return state, err
		}

		a.printError(err)
		if a.maxAttempts > 0 && attempt >= a.maxAttempts {
			return state, ErrTooManyAttempts
		}
	}
}

// ChangePin сначала открывает гейт, если PIN уже задан, затем создает новый
func (a *App) ChangePin(ctx context.Context) (pin.GateState, error) {
	if _, err := a.Unlock(ctx); err != nil {
		return a.gate.State(), err
	}
	return a.SetPin(ctx)
}

func (a *App) printError(err error) {
	var msg string
	switch {
	case pin.IsValidation(err, pin.ReasonLength):
		msg = fmt.Sprintf("PIN должен содержать от %d до %d символов", pin.MinLen, pin.MaxLen)
	case pin.IsValidation(err, pin.ReasonFormat):
		msg = "PIN должен состоять только из цифр"
	case pin.IsValidation(err, pin.ReasonMismatch):
		msg = "PIN-коды не совпадают"
	case pin.IsAuth(err, pin.ReasonIncorrectPin):
		msg = "Неверный PIN"
	default:
		msg = err.Error()
	}
	color.New(color.FgRed).Fprintln(a.out, msg)
}
