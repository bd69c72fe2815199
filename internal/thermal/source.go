package thermal

import "fmt"

// NotifyName is the Darwin notification carrying the thermal pressure state.
const NotifyName = "com.apple.system.thermalpressurelevel"

// Status codes from notify.h.
const (
	StatusOK     uint32 = 0
	StatusFailed uint32 = 1000000
)

// Operations reported in a StatusError.
const (
	OpRegister = "register"
	OpRead     = "read"
)

// Handle identifies a registration with a Source.
type Handle int32

// Source is the capability used to read the raw thermal state.
//
// Register must succeed before Read is called. Read has no side effects on
// the underlying signal. Release is best effort and never reports failure.
type Source interface {
	Register() (Handle, error)
	Read(h Handle) (uint64, error)
	Release(h Handle)
}

// StatusError is a non-OK status returned by the signal source.
type StatusError struct {
	Op     string
	Status uint32
}

func (e *StatusError) Error() string {
	switch e.Op {
	case OpRegister:
		return fmt.Sprintf("failed to register thermal notification (status: %d)", e.Status)
	case OpRead:
		return fmt.Sprintf("failed to read thermal state (status: %d)", e.Status)
	default:
		return fmt.Sprintf("thermal %s failed (status: %d)", e.Op, e.Status)
	}
}
