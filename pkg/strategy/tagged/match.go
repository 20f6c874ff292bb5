package tagged

import "fmt"

// Handler handles every variant of Error.
type Handler[T any] interface {
	IoFailure(IoFailure) T
	InvalidHeader(InvalidHeader) T
	Wrapped(Wrapped) T
}

// Match dispatches err to the handler method for its variant. err must be
// non-nil; anything outside the closed set panics.
func Match[T any](err Error, h Handler[T]) T {
	switch e := err.(type) {
	case IoFailure:
		return h.IoFailure(e)
	case *IoFailure:
		if e != nil {
			return h.IoFailure(*e)
		}
	case InvalidHeader:
		return h.InvalidHeader(e)
	case *InvalidHeader:
		if e != nil {
			return h.InvalidHeader(*e)
		}
	case Wrapped:
		return h.Wrapped(e)
	case *Wrapped:
		if e != nil {
			return h.Wrapped(*e)
		}
	}
	panic(fmt.Sprintf("tagged: unhandled error variant %T", err))
}
