package thermal

import "fmt"

// Pressure is a classified thermal pressure level.
//
// The named levels mirror the values published by OSThermalNotification.h.
// Any other raw state is an unknown level whose ordinal is the raw value
// itself, so a Pressure is just the raw state with a closed set of names.
type Pressure uint64

// Known thermal pressure levels, in increasing severity.
const (
	Nominal Pressure = iota
	Moderate
	Heavy
	Trapping
	Sleeping
)

// Classify maps a raw notify state to a Pressure. It never fails: values
// outside the known range classify as unknown levels.
func Classify(raw uint64) Pressure {
	return Pressure(raw)
}

// Level returns the ordinal severity: 0-4 for the named levels and the raw
// value for unknown ones.
func (p Pressure) Level() uint64 {
	return uint64(p)
}

// IsThrottled reports whether the system is under any thermal pressure.
// Every level except Nominal, unknown ones included, counts as throttled.
func (p Pressure) IsThrottled() bool {
	return p != Nominal
}

// Description returns a fixed human-readable sentence for the level.
func (p Pressure) Description() string {
	switch p {
	case Nominal:
		return "No thermal pressure"
	case Moderate:
		return "System may reduce performance"
	case Heavy:
		return "System is actively throttling"
	case Trapping:
		return "Critical thermal pressure, system is severely throttled"
	case Sleeping:
		return "Extreme thermal pressure, system may sleep to cool down"
	default:
		return "Unknown thermal pressure level"
	}
}

// String returns the display name, e.g. "Heavy" or "Unknown(7)".
func (p Pressure) String() string {
	switch p {
	case Nominal:
		return "Nominal"
	case Moderate:
		return "Moderate"
	case Heavy:
		return "Heavy"
	case Trapping:
		return "Trapping"
	case Sleeping:
		return "Sleeping"
	default:
		return fmt.Sprintf("Unknown(%d)", uint64(p))
	}
}
