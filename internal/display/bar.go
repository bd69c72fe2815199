package display

import (
	"time"

	"github.com/rileyhilliard/toast/internal/errors"
	"github.com/rileyhilliard/toast/internal/thermal"
	"github.com/rileyhilliard/toast/internal/ui"
)

// BarDisplay draws the rolling pressure chart with a caption row under it,
// and prints change lines into the scrollback above.
type BarDisplay struct {
	surface Surface
	history *History
	rows    int
	now     func() time.Time
}

// NewBarDisplay creates a chart of ChartRows rows on surface. The surface
// must be at least ChartRows+1 rows tall to fit the caption.
func NewBarDisplay(surface Surface) *BarDisplay {
	return &BarDisplay{
		surface: surface,
		history: NewHistory(),
		rows:    ChartRows,
		now:     time.Now,
	}
}

// SetClock overrides the clock used for change line timestamps.
// Useful for testing.
func (d *BarDisplay) SetClock(now func() time.Time) {
	d.now = now
}

// Push records a sample. The history keeps at most one sample per column
// of the terminal as it is right now.
func (d *BarDisplay) Push(p thermal.Pressure) {
	d.history.Push(p, d.surface.Width())
}

// History returns the retained samples, oldest first.
func (d *BarDisplay) History() []thermal.Pressure {
	return d.history.Samples()
}

// Frame builds the lines for one redraw: the chart rows then the caption.
func (d *BarDisplay) Frame(caption string) []string {
	width := d.surface.Width()
	lines := ChartLines(d.history.Last(width), width, d.rows)
	return append(lines, ui.Dim(caption))
}

// Draw redraws the chart with caption underneath.
func (d *BarDisplay) Draw(caption string) error {
	if err := d.surface.Draw(d.Frame(caption)); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Failed to draw pressure chart", "")
	}
	return nil
}

// PrintStatus writes a timestamped change line above the chart.
func (d *BarDisplay) PrintStatus(p thermal.Pressure) error {
	if err := d.surface.InsertBefore(ui.ChangeLine(d.now(), p)); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Failed to print pressure change", "")
	}
	return nil
}

// Close releases the surface, leaving the last frame on screen.
func (d *BarDisplay) Close() error {
	return d.surface.Close()
}
