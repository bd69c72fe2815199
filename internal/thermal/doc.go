// Package thermal reads and classifies the macOS thermal pressure level.
//
// The raw level comes from a Source, a narrow capability with three
// operations (Register, Read, Release). On macOS with cgo the source is the
// notify(3) API on com.apple.system.thermalpressurelevel; elsewhere
// registration fails with a status error.
//
// # Classification
//
// Classify turns a raw state into a Pressure:
//
//	0  Nominal    not throttled
//	1  Moderate   throttled
//	2  Heavy      throttled
//	3  Trapping   throttled
//	4  Sleeping   throttled
//	n  Unknown(n) throttled, ordinal n
//
// # Lifetime
//
// A Monitor owns one registration. Callers Open it once, defer Close, and
// call Read as often as they like:
//
//	m, err := thermal.Open(thermal.NewNotifySource())
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//	p, err := m.Read()
package thermal
