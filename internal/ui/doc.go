// Package ui provides terminal styling for toast's CLI output.
//
// Everything here renders through Lip Gloss so that --no-color and
// NO_COLOR are honoured in one place (DisableColors).
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess  (green)   - Nominal label
//	ColorWarning  (yellow)  - Moderate label and columns
//	ColorError    (red)     - Heavy and Trapping labels and columns
//	ColorCritical (magenta) - Sleeping label and columns
//	ColorPrimary  (white)   - Nominal columns
//	ColorMuted    (gray)    - Secondary text
//
// # Lines
//
// Line rewrites one terminal line in place, used by the plain watch view
// for its countdown:
//
//	l := ui.NewLine(os.Stdout)
//	l.Status("Next check in 5s")
//	l.Clear()
//	l.Println(ui.ChangeLine(time.Now(), thermal.Heavy))
package ui
