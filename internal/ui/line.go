package ui

import (
	"io"

	"github.com/muesli/termenv"
)

// Line rewrites a single terminal line in place. It is the plain-mode
// counterpart of the inline chart region: every write starts with a
// carriage return and an erase so the previous text never shows through.
type Line struct {
	out *termenv.Output
}

// NewLine creates a Line writing to w.
func NewLine(w io.Writer) *Line {
	return &Line{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Clear erases the current line and returns the cursor to column 0.
func (l *Line) Clear() {
	l.reset()
}

// Status replaces the current line with a dimmed transient message.
// No newline is written, so the next Status or Clear overwrites it.
func (l *Line) Status(msg string) {
	l.reset()
	_, _ = l.out.WriteString(Dim(msg))
}

// Println clears the current line and writes s followed by a newline.
func (l *Line) Println(s string) {
	l.reset()
	_, _ = l.out.WriteString(s + "\n")
}

func (l *Line) reset() {
	_, _ = l.out.WriteString("\r")
	l.out.ClearLine()
}
