package display

import "github.com/rileyhilliard/toast/internal/thermal"

// History is the rolling, oldest-first record of pressure samples behind the
// bar chart. Its capacity is not fixed: every Push is told the current
// capacity (the terminal width), so a narrower terminal trims the oldest
// samples on the next push.
type History struct {
	samples []thermal.Pressure
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push evicts the oldest samples until there is room for one more under
// capacity, then appends p. Capacities below 1 are treated as 1.
func (h *History) Push(p thermal.Pressure, capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if over := len(h.samples) - capacity + 1; over > 0 {
		n := copy(h.samples, h.samples[over:])
		h.samples = h.samples[:n]
	}
	h.samples = append(h.samples, p)
}

// Len returns the number of retained samples.
func (h *History) Len() int {
	return len(h.samples)
}

// Samples returns a copy of the retained samples, oldest first.
func (h *History) Samples() []thermal.Pressure {
	if len(h.samples) == 0 {
		return nil
	}
	out := make([]thermal.Pressure, len(h.samples))
	copy(out, h.samples)
	return out
}

// Last returns the count most recent samples in chronological order.
// Returns fewer values if not enough history is available.
func (h *History) Last(count int) []thermal.Pressure {
	if count <= 0 || len(h.samples) == 0 {
		return nil
	}
	if count > len(h.samples) {
		count = len(h.samples)
	}
	out := make([]thermal.Pressure, count)
	copy(out, h.samples[len(h.samples)-count:])
	return out
}
