// Package erased reports file-read failures as a plain error whose concrete
// value keeps nothing but a classification and a message.
//
// The original cause is dropped at the point of failure and every Rewrap
// replaces the message again, so only the newest description survives. Use it
// only at reporting boundaries where no structured handling follows.
package erased

import (
	"errors"
	"fmt"
	"io"

	"github.com/oldmonad/readerr/pkg/fsutil"
)

// KindError is the only structure left after erasure. It has no Unwrap.
type KindError struct {
	kind fsutil.Kind
	msg  string
}

// New returns an erased error with the given classification and message.
func New(kind fsutil.Kind, msg string) error {
	if kind == "" {
		kind = fsutil.Other
	}
	return &KindError{kind: kind, msg: msg}
}

// Rewrap replaces the message of err, keeping only its classification.
// Whatever err said before is gone.
func Rewrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	kind := fsutil.Other
	var ke *KindError
	if errors.As(err, &ke) {
		kind = ke.kind
	}
	return New(kind, msg)
}

func (e *KindError) Kind() fsutil.Kind {
	return e.kind
}

// Message returns the message without its classification.
func (e *KindError) Message() string {
	return e.msg
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *KindError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		fmt.Fprintf(s, "KindError{kind: %s, error: %q}", e.kind, e.msg)
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		io.WriteString(s, e.Error())
	}
}

// Downcast attempts to recover a concrete type from an erased error. It only
// succeeds for types that survived erasure.
func Downcast[T error](err error) (T, bool) {
	var target T
	if err == nil {
		return target, false
	}
	ok := errors.As(err, &target)
	return target, ok
}
