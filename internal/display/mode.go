package display

import (
	"io"

	"github.com/rileyhilliard/toast/internal/errors"
	"github.com/rileyhilliard/toast/internal/logger"
	"github.com/rileyhilliard/toast/internal/thermal"
)

// Kind selects how watch mode renders.
type Kind int

const (
	// KindPlain prints change lines and a one-line countdown.
	KindPlain Kind = iota
	// KindBar draws the rolling chart.
	KindBar
)

// String returns the flag-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	default:
		return "plain"
	}
}

// Mode routes poll loop events to the selected display. Rendering
// failures are logged and never stop the loop.
type Mode struct {
	kind  Kind
	plain *PlainDisplay
	bar   *BarDisplay
	log   logger.Logger
}

// New creates the display for kind on w. Bar mode needs an interactive
// terminal; anything else is a RENDER error.
func New(kind Kind, w io.Writer, log logger.Logger) (*Mode, error) {
	if kind == KindBar {
		if !IsTerminal(w) {
			return nil, errors.New(errors.ErrRender,
				"Cannot draw the pressure chart: output is not a terminal",
				"Run without --bar, or run toast in an interactive terminal.")
		}
		surface := NewInlineSurface(w, ChartRows+1)
		return NewBarMode(NewBarDisplay(surface), log), nil
	}
	return NewPlainMode(NewPlainDisplay(w), log), nil
}

// NewPlainMode wraps an existing plain display.
func NewPlainMode(d *PlainDisplay, log logger.Logger) *Mode {
	return &Mode{kind: KindPlain, plain: d, log: orNoop(log)}
}

// NewBarMode wraps an existing bar display.
func NewBarMode(d *BarDisplay, log logger.Logger) *Mode {
	return &Mode{kind: KindBar, bar: d, log: orNoop(log)}
}

// Kind returns the active display kind.
func (m *Mode) Kind() Kind {
	return m.kind
}

// OnReading is called for every successful reading.
func (m *Mode) OnReading(p thermal.Pressure) {
	if m.kind == KindBar {
		m.bar.Push(p)
	}
}

// OnChange is called on the first reading and whenever the level changes.
func (m *Mode) OnChange(p thermal.Pressure) {
	switch m.kind {
	case KindBar:
		if err := m.bar.PrintStatus(p); err != nil {
			m.logRender(err)
		}
	default:
		m.plain.PrintChange(p)
	}
}

// OnTick is called once per countdown tick with the caption to show.
func (m *Mode) OnTick(caption string) {
	switch m.kind {
	case KindBar:
		if err := m.bar.Draw(caption); err != nil {
			m.logRender(err)
		}
	default:
		m.plain.Status(caption)
	}
}

// OnCycleEnd is called after the last tick of a cycle.
func (m *Mode) OnCycleEnd() {
	if m.kind == KindPlain {
		m.plain.Clear()
	}
}

// Close tears down the display. Plain mode clears any pending status.
func (m *Mode) Close() error {
	switch m.kind {
	case KindBar:
		if err := m.bar.Close(); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to restore the terminal", "")
		}
	default:
		m.plain.Clear()
	}
	return nil
}

func (m *Mode) logRender(err error) {
	var toastErr *errors.Error
	if errors.As(err, &toastErr) {
		m.log.Error("%s", toastErr.Summary())
		return
	}
	m.log.Error("render failed: %v", err)
}

func orNoop(log logger.Logger) logger.Logger {
	if log == nil {
		return logger.Noop()
	}
	return log
}
