package tagged

import (
	"fmt"
	"io"

	"github.com/oldmonad/readerr/pkg/fsutil"
)

// Error is the closed set of failures. Only the variants declared in this
// package implement it.
type Error interface {
	error
	tagged()
}

var (
	_ Error = IoFailure{}
	_ Error = InvalidHeader{}
	_ Error = Wrapped{}
)

// IoFailure is any failure opening or reading File. Cause keeps the original
// error so its classification stays recoverable.
type IoFailure struct {
	Cause error
	File  string
}

func (IoFailure) tagged() {}

func (e IoFailure) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("i/o failure on %s", e.File)
	}
	return fmt.Sprintf("i/o failure on %s: %v", e.File, e.Cause)
}

func (e IoFailure) Unwrap() error {
	return e.Cause
}

// Kind classifies Cause.
func (e IoFailure) Kind() fsutil.Kind {
	if e.Cause == nil {
		return fsutil.Other
	}
	return fsutil.Classify(e.Cause)
}

func (e IoFailure) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "IoFailure{file: %q, kind: %s, cause: %v}", e.File, e.Kind(), e.Cause)
		return
	}
	format(s, verb, e)
}

// InvalidHeader reports contents that do not start with the expected header.
type InvalidHeader struct {
	Expected string
	Found    string
}

func (InvalidHeader) tagged() {}

func (e InvalidHeader) Error() string {
	return fmt.Sprintf("invalid header (expected %q, found %q)", e.Expected, e.Found)
}

func (e InvalidHeader) Kind() fsutil.Kind {
	return fsutil.InvalidData
}

func (e InvalidHeader) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "InvalidHeader{expected: %q, found: %q}", e.Expected, e.Found)
		return
	}
	format(s, verb, e)
}

// Wrapped absorbs an error that has no dedicated variant. It displays as the
// wrapped error.
type Wrapped struct {
	Err error
}

func (Wrapped) tagged() {}

func (e Wrapped) Error() string {
	if e.Err == nil {
		return "<nil>"
	}
	return e.Err.Error()
}

func (e Wrapped) Unwrap() error {
	return e.Err
}

func (e Wrapped) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "Wrapped{%+v}", e.Err)
		return
	}
	format(s, verb, e)
}

func format(s fmt.State, verb rune, err error) {
	switch verb {
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	default:
		io.WriteString(s, err.Error())
	}
}

// From converts any error into the closed set. Tagged errors are returned
// unchanged; anything else becomes Wrapped. A nil error stays nil.
func From(err error) Error {
	if err == nil {
		return nil
	}
	if t, ok := err.(Error); ok {
		return t
	}
	return Wrapped{Err: err}
}
