package errors

import (
	"fmt"
	"strings"
)

// ErrStrategyValidation wraps a strategy selection error
type ErrStrategyValidation struct {
	Err error
}

func (e ErrStrategyValidation) Error() string {
	return fmt.Sprintf("strategy validation failed: %v", e.Err)
}

func (e ErrStrategyValidation) Unwrap() error {
	return e.Err
}

func NewStrategyValidationError(err error) error {
	return ErrStrategyValidation{Err: err}
}

type UnknownStrategiesError struct {
	Unknown []string
	Valid   []string
}

func (e *UnknownStrategiesError) Error() string {
	var validFormatted string
	for _, s := range e.Valid {
		validFormatted += fmt.Sprintf("  - %s\n", s)
	}
	return fmt.Sprintf("unknown strategies: %s\nValid options:\n%s", strings.Join(e.Unknown, ", "), validFormatted)
}

func NewUnknownStrategiesError(unknown, valid []string) error {
	return &UnknownStrategiesError{Unknown: unknown, Valid: valid}
}
