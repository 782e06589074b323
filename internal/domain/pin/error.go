package pin

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidAuth        = errors.New("invalid credentials")
	ErrNotFound           = errors.New("pin record not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnknownMode        = errors.New("unknown mode")
)

const (
	ReasonLength   = "length"
	ReasonMismatch = "mismatch"
	ReasonFormat   = "format"

	ReasonIncorrectPin = "incorrect_pin"
	ReasonLocked       = "locked"
)

// ValidationError - PIN не прошел проверку формы
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonLength:
		return fmt.Sprintf("pin must be %d to %d characters", MinLen, MaxLen)
	case ReasonMismatch:
		return "pin and confirmation do not match"
	case ReasonFormat:
		return "pin must contain only digits"
	}
	return "invalid pin: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// AuthError - PIN не подошел или гейт закрыт
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	switch e.Reason {
	case ReasonIncorrectPin:
		return "incorrect pin"
	case ReasonLocked:
		return "gate is locked, unlock before changing the pin"
	}
	return "auth failed: " + e.Reason
}

func (e *AuthError) Unwrap() error {
	return ErrInvalidAuth
}

// IsValidation проверяет, является ли ошибка ValidationError с указанной причиной
func IsValidation(err error, reason string) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Reason == reason
}

// IsAuth проверяет, является ли ошибка AuthError с указанной причиной
func IsAuth(err error, reason string) bool {
	var ae *AuthError
	return errors.As(err, &ae) && ae.Reason == reason
}
