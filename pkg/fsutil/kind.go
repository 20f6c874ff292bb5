package fsutil

import (
	"errors"
	"io/fs"
)

// Kind is the coarse fault classification attached to a low-level file failure,
// independent of the error type reporting it.
type Kind string

const (
	NotFound         Kind = "not found"
	PermissionDenied Kind = "permission denied"
	InvalidData      Kind = "invalid data"
	Other            Kind = "other"
)

// Classified is implemented by errors that already carry a Kind.
type Classified interface {
	Kind() Kind
}

// Classify returns the Kind of err. Errors carrying their own Kind anywhere in
// the chain win over the fs sentinels. A nil error has no kind.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}

	var c Classified
	if errors.As(err, &c) {
		return c.Kind()
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, ErrInvalidUTF8):
		return InvalidData
	default:
		return Other
	}
}
