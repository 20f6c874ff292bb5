// Package contextual reports file-read failures through one universal error
// type: a chain of context frames.
//
// Each propagation boundary attaches a message with Wrap, Wrapf or
// WithContext without declaring a new type, and the chain keeps every frame
// beneath it. Callers recover the failure kind only on a best-effort basis,
// through errors.Is/As on the chain or by inspecting its text.
package contextual

import (
	"errors"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Chain is one context frame. cause is the frame beneath it: another Chain or
// the foreign error the chain started from.
type Chain struct {
	msg   string
	cause error
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Wrap attaches msg to err. The first frame attached to a foreign error
// records the call stack. Wrap returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Chain); !ok {
		var st stackTracer
		if !errors.As(err, &st) {
			err = pkgerrors.WithStack(err)
		}
	}
	return &Chain{msg: msg, cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithContext is Wrap with a lazily built message, evaluated only on failure.
func WithContext(err error, msg func() string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, msg())
}

// Message returns this frame's own message.
func (c *Chain) Message() string {
	return c.msg
}

func (c *Chain) Error() string {
	if c.cause == nil {
		return c.msg
	}
	return c.msg + ": " + c.cause.Error()
}

func (c *Chain) Unwrap() error {
	return c.cause
}

// Cause returns the innermost foreign error, for callers using
// github.com/pkg/errors.Cause.
func (c *Chain) Cause() error {
	return RootCause(c)
}

// StackTrace returns the stack recorded when the chain started.
func (c *Chain) StackTrace() pkgerrors.StackTrace {
	var st stackTracer
	if errors.As(c.cause, &st) {
		return st.StackTrace()
	}
	return nil
}

// Format renders the report form for %+v and the one-line form otherwise.
func (c *Chain) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		io.WriteString(s, Report(c))
	case verb == 'q':
		fmt.Fprintf(s, "%q", c.Error())
	default:
		io.WriteString(s, c.Error())
	}
}

// Frames lists the messages of err from the outermost frame to the root
// cause. The root cause appears once, with its full text.
func Frames(err error) []string {
	var frames []string
	for err != nil {
		c, ok := err.(*Chain)
		if !ok {
			frames = append(frames, RootCause(err).Error())
			break
		}
		frames = append(frames, c.msg)
		err = c.cause
	}
	return frames
}

// RootCause returns the error the chain started from, or err itself when it
// is not a chain.
func RootCause(err error) error {
	for {
		c, ok := err.(*Chain)
		if !ok {
			break
		}
		err = c.cause
	}
	if err != nil {
		if _, ok := err.(stackTracer); ok {
			if inner := errors.Unwrap(err); inner != nil {
				return inner
			}
		}
	}
	return err
}

// Report renders err as its top message followed by a "Caused by:" section
// listing every deeper frame.
func Report(err error) string {
	frames := Frames(err)
	if len(frames) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(frames[0])
	causes := frames[1:]
	if len(causes) == 0 {
		return b.String()
	}

	b.WriteString("\n\nCaused by:")
	for i, cause := range causes {
		if len(causes) == 1 {
			fmt.Fprintf(&b, "\n    %s", cause)
			continue
		}
		fmt.Fprintf(&b, "\n    %d: %s", i, cause)
	}
	return b.String()
}
