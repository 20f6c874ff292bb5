package errors

import "fmt"

// ErrEnvLoad wraps failures loading the .env file.
type ErrEnvLoad struct {
	Path string
	Err  error
}

func (e ErrEnvLoad) Error() string {
	return fmt.Sprintf("error loading %s: %v", e.Path, e.Err)
}

func (e ErrEnvLoad) Unwrap() error {
	return e.Err
}

func NewErrEnvLoad(path string, err error) error {
	return ErrEnvLoad{Path: path, Err: err}
}

// ErrConfigSetup wraps failures in SetupConfigurations.
type ErrConfigSetup struct {
	Err error
}

func (e ErrConfigSetup) Error() string {
	return fmt.Sprintf("error loading configuration: %v", e.Err)
}

func (e ErrConfigSetup) Unwrap() error {
	return e.Err
}

func NewErrConfigSetup(err error) error {
	return ErrConfigSetup{Err: err}
}
