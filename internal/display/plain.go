package display

import (
	"io"
	"time"

	"github.com/rileyhilliard/toast/internal/thermal"
	"github.com/rileyhilliard/toast/internal/ui"
)

// PlainDisplay prints one line per change and keeps the countdown on a
// single line that is rewritten in place.
type PlainDisplay struct {
	line *ui.Line
	now  func() time.Time
}

// NewPlainDisplay creates a plain display writing to w.
func NewPlainDisplay(w io.Writer) *PlainDisplay {
	return &PlainDisplay{line: ui.NewLine(w), now: time.Now}
}

// SetClock overrides the clock used for change line timestamps.
// Useful for testing.
func (d *PlainDisplay) SetClock(now func() time.Time) {
	d.now = now
}

// PrintChange clears the status line and prints a change line.
func (d *PlainDisplay) PrintChange(p thermal.Pressure) {
	d.line.Println(ui.ChangeLine(d.now(), p))
}

// Status shows a dimmed transient message on the status line.
func (d *PlainDisplay) Status(msg string) {
	d.line.Status(msg)
}

// Clear erases the status line.
func (d *PlainDisplay) Clear() {
	d.line.Clear()
}
