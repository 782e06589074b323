package pin

import "unicode/utf8"

// Validator - проверка формы PIN
type Validator interface {
	ValidateLength(candidate string) error
	ValidateCreate(candidate, confirmation string) error
}

type DigitsValidator struct {
	minLen int
	maxLen int
}

// NewDigitsValidator создает валидатор с границами MinLen..MaxLen
func NewDigitsValidator() *DigitsValidator {
	return &DigitsValidator{
		minLen: MinLen,
		maxLen: MaxLen,
	}
}

// ValidateLength проверяет длину в символах, а не в байтах
func (v *DigitsValidator) ValidateLength(candidate string) error {
	n := utf8.RuneCountInString(candidate)
	if n < v.minLen || n > v.maxLen {
		return &ValidationError{Reason: ReasonLength}
	}
	return nil
}

// ValidateCreate валидирует новый PIN и его подтверждение
func (v *DigitsValidator) ValidateCreate(candidate, confirmation string) error {
	if err := v.ValidateLength(candidate); err != nil {
		return err
	}

	for _, r := range candidate {
		if r < '0' || r > '9' {
			return &ValidationError{Reason: ReasonFormat}
		}
	}

	if candidate != confirmation {
		return &ValidationError{Reason: ReasonMismatch}
	}

	return nil
}
