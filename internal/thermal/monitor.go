package thermal

import (
	"runtime"
	"sync"

	"github.com/rileyhilliard/toast/internal/errors"
)

// Monitor owns a single registration with a Source for its whole lifetime.
// Open registers, Close releases exactly once.
type Monitor struct {
	mu     sync.Mutex
	src    Source
	handle Handle
	closed bool
}

// Open registers with src and returns a Monitor holding the handle.
// A failed registration is a REGISTER error whose cause carries the status.
func Open(src Source) (*Monitor, error) {
	h, err := src.Register()
	if err != nil {
		suggestion := "Thermal pressure is read through the macOS notify API."
		if runtime.GOOS != "darwin" {
			suggestion = "toast only works on macOS; this platform has no thermal pressure notifications."
		}
		return nil, errors.WrapWithCode(err, errors.ErrRegister,
			"Cannot register for thermal pressure notifications",
			suggestion)
	}

	m := &Monitor{src: src, handle: h}
	// Release the registration even if a caller forgets to Close.
	runtime.SetFinalizer(m, (*Monitor).Close)
	return m, nil
}

// Read fetches and classifies the current thermal state.
// Failures are returned as *StatusError and leave the Monitor usable.
func (m *Monitor) Read() (Pressure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Nominal, &StatusError{Op: OpRead, Status: StatusFailed}
	}

	raw, err := m.src.Read(m.handle)
	if err != nil {
		return Nominal, err
	}
	return Classify(raw), nil
}

// Close releases the registration. It is safe to call more than once.
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	m.src.Release(m.handle)
	runtime.SetFinalizer(m, nil)
}
