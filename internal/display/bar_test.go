package display

import (
	"testing"
	"time"

	toasterrors "github.com/rileyhilliard/toast/internal/errors"
	"github.com/rileyhilliard/toast/internal/thermal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 1, 0, time.Local)
}

func TestBarDisplayFrame(t *testing.T) {
	surface := newFakeSurface(10)
	d := NewBarDisplay(surface)

	d.Push(thermal.Nominal)
	d.Push(thermal.Heavy)
	require.NoError(t, d.Draw("Next check in 4s"))

	frame := surface.lastFrame()
	require.Len(t, frame, ChartRows+1)
	assert.Equal(t, "  ", frame[0])
	assert.Equal(t, " ▄", frame[1])
	assert.Equal(t, "▄█", frame[2])
	assert.Equal(t, "Next check in 4s", frame[3])
}

func TestBarDisplayHistoryFollowsWidth(t *testing.T) {
	surface := newFakeSurface(3)
	d := NewBarDisplay(surface)

	for i := 0; i < 5; i++ {
		d.Push(thermal.Classify(uint64(i)))
	}
	assert.Equal(t, []thermal.Pressure{thermal.Heavy, thermal.Trapping, thermal.Sleeping}, d.History())

	surface.width = 1
	d.Push(thermal.Nominal)
	assert.Equal(t, []thermal.Pressure{thermal.Nominal}, d.History())
}

func TestBarDisplayFrameAfterShrink(t *testing.T) {
	surface := newFakeSurface(3)
	d := NewBarDisplay(surface)
	d.Push(thermal.Sleeping)
	d.Push(thermal.Nominal)
	d.Push(thermal.Heavy)

	// Narrower terminal, no new sample yet: only the newest columns fit.
	surface.width = 2
	frame := d.Frame("")

	require.Len(t, frame, ChartRows+1)
	assert.Equal(t, "  ", frame[0])
	assert.Equal(t, " ▄", frame[1])
	assert.Equal(t, "▄█", frame[2])
	assert.Len(t, d.History(), 3, "history is only trimmed on push")
}

func TestBarDisplayPrintStatus(t *testing.T) {
	surface := newFakeSurface(10)
	d := NewBarDisplay(surface)
	d.SetClock(fixedClock)

	require.NoError(t, d.PrintStatus(thermal.Heavy))

	require.Len(t, surface.inserted, 1)
	assert.Equal(t, "12:00:01 Heavy (System is actively throttling)", surface.inserted[0])
}

func TestBarDisplayRenderErrors(t *testing.T) {
	surface := newFakeSurface(10)
	surface.fail = true
	d := NewBarDisplay(surface)

	err := d.Draw("Next check in 5s")
	require.Error(t, err)
	assert.True(t, toasterrors.IsCode(err, toasterrors.ErrRender))

	err = d.PrintStatus(thermal.Nominal)
	require.Error(t, err)
	assert.True(t, toasterrors.IsCode(err, toasterrors.ErrRender))
}

func TestBarDisplayClose(t *testing.T) {
	surface := newFakeSurface(10)
	d := NewBarDisplay(surface)

	require.NoError(t, d.Close())
	assert.Equal(t, 1, surface.closed)
}
