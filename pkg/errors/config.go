package errors

import (
	"fmt"
)

// ErrBoolParse wraps failures parsing a boolean env var such as DEBUG.
type ErrBoolParse struct {
	Name     string
	RawValue string
	Err      error
}

func (e ErrBoolParse) Error() string {
	return fmt.Sprintf("failed to parse %s=%q: %v", e.Name, e.RawValue, e.Err)
}

func (e ErrBoolParse) Unwrap() error {
	return e.Err
}

func NewErrBoolParse(name, raw string, err error) error {
	return ErrBoolParse{Name: name, RawValue: raw, Err: err}
}

// ErrEmptyPath is returned when the demonstration path resolves to "".
type ErrEmptyPath struct{}

func (e ErrEmptyPath) Error() string {
	return "DEMO_PATH must not be empty"
}

func NewErrEmptyPath() error {
	return ErrEmptyPath{}
}
