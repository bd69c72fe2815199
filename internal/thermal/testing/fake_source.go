// Package testing provides test doubles for the thermal package.
package testing

import (
	"sync"

	"github.com/rileyhilliard/toast/internal/thermal"
)

// FakeSource is a scripted thermal.Source.
//
// Reads return the configured states in order and keep repeating the last
// one once the script runs out. Individual reads can be made to fail.
type FakeSource struct {
	mu             sync.Mutex
	states         []uint64
	registerStatus uint32
	readFailures   map[int]uint32
	handle         thermal.Handle

	// Tracking for assertions
	RegisterCalls int
	ReadCalls     int
	ReleaseCalls  int
	Released      []thermal.Handle
}

// NewFakeSource creates a fake that reads the given raw states in order.
func NewFakeSource(states ...uint64) *FakeSource {
	return &FakeSource{
		states:       states,
		readFailures: make(map[int]uint32),
		handle:       42,
	}
}

// FailRegister makes Register fail with the given status.
func (f *FakeSource) FailRegister(status uint32) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerStatus = status
	return f
}

// FailReadAt makes the read with the given zero-based index fail with status.
// A failed read does not consume a scripted state.
func (f *FakeSource) FailReadAt(index int, status uint32) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readFailures[index] = status
	return f
}

// Register implements thermal.Source.
func (f *FakeSource) Register() (thermal.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.RegisterCalls++
	if f.registerStatus != thermal.StatusOK {
		return 0, &thermal.StatusError{Op: thermal.OpRegister, Status: f.registerStatus}
	}
	return f.handle, nil
}

// Read implements thermal.Source.
func (f *FakeSource) Read(h thermal.Handle) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	index := f.ReadCalls
	f.ReadCalls++

	if status, ok := f.readFailures[index]; ok {
		return 0, &thermal.StatusError{Op: thermal.OpRead, Status: status}
	}

	if len(f.states) == 0 {
		return 0, nil
	}
	state := f.states[0]
	if len(f.states) > 1 {
		f.states = f.states[1:]
	}
	return state, nil
}

// Release implements thermal.Source.
func (f *FakeSource) Release(h thermal.Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ReleaseCalls++
	f.Released = append(f.Released, h)
}
