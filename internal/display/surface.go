package display

import (
	"bytes"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or its size
// cannot be read.
const DefaultWidth = 80

// Surface is a fixed-height drawing region anchored at the bottom of the
// terminal output, with scrollback above it.
type Surface interface {
	// Width returns the current terminal width in columns, at least 1.
	Width() int
	// Draw replaces the region's contents. Extra lines are dropped.
	Draw(lines []string) error
	// InsertBefore writes a persistent line above the region.
	InsertBefore(line string) error
	// Close leaves the last frame on screen and moves the cursor below it.
	Close() error
}

// InlineSurface is a Surface that redraws in place with cursor movement
// rather than taking over the whole screen. Each frame is composed into
// a buffer and written with a single Write.
type InlineSurface struct {
	mu     sync.Mutex
	w      io.Writer
	height int
	width  func() int
	drawn  bool
	hidden bool
	last   []string
}

// NewInlineSurface creates a region of the given height on w. The width
// follows the terminal if w is one, otherwise DefaultWidth.
func NewInlineSurface(w io.Writer, height int) *InlineSurface {
	if height < 1 {
		height = 1
	}
	return &InlineSurface{
		w:      w,
		height: height,
		width:  terminalWidth(w),
	}
}

// SetWidthFunc overrides how the width is measured.
// Useful for testing.
func (s *InlineSurface) SetWidthFunc(fn func() int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = fn
}

// Width implements Surface.
func (s *InlineSurface) Width() int {
	s.mu.Lock()
	fn := s.width
	s.mu.Unlock()

	if w := fn(); w >= 1 {
		return w
	}
	return 1
}

// Draw implements Surface.
func (s *InlineSurface) Draw(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	out := newOutput(&buf)
	if !s.hidden {
		out.HideCursor()
		s.hidden = true
	}
	s.home(out)
	s.paint(&buf, out, lines)

	s.last = append(s.last[:0], lines...)
	s.drawn = true
	return s.flush(&buf)
}

// InsertBefore implements Surface. The region moves down one row and its
// last frame is painted again under the new line.
func (s *InlineSurface) InsertBefore(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	out := newOutput(&buf)
	if s.drawn {
		s.home(out)
	} else {
		buf.WriteString("\r")
	}
	out.ClearLine()
	buf.WriteString(line)
	buf.WriteString("\n")
	if s.drawn {
		s.paint(&buf, out, s.last)
	}
	return s.flush(&buf)
}

// Close implements Surface.
func (s *InlineSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	out := newOutput(&buf)
	if s.drawn {
		buf.WriteString("\r\n")
		s.drawn = false
	}
	if s.hidden {
		out.ShowCursor()
		s.hidden = false
	}
	if buf.Len() == 0 {
		return nil
	}
	return s.flush(&buf)
}

// home moves the cursor from the region's last row to column 0 of its
// first row. Must be called with lock held.
func (s *InlineSurface) home(out *termenv.Output) {
	_, _ = out.WriteString("\r")
	if s.drawn && s.height > 1 {
		out.CursorUp(s.height - 1)
	}
}

// paint writes every row of the region, clearing each first, and leaves
// the cursor on the last row. Must be called with lock held.
func (s *InlineSurface) paint(buf *bytes.Buffer, out *termenv.Output, lines []string) {
	for row := 0; row < s.height; row++ {
		out.ClearLine()
		if row < len(lines) {
			buf.WriteString(lines[row])
		}
		if row < s.height-1 {
			buf.WriteString("\n")
		}
	}
}

func (s *InlineSurface) flush(buf *bytes.Buffer) error {
	_, err := s.w.Write(buf.Bytes())
	return err
}

// newOutput wraps buf for control sequences only. Colors are already
// baked into the lines by lipgloss.
func newOutput(buf *bytes.Buffer) *termenv.Output {
	return termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
}

// terminalWidth returns a width probe for w. Writers without a file
// descriptor, and descriptors that are not terminals, get DefaultWidth.
func terminalWidth(w io.Writer) func() int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return func() int { return DefaultWidth }
	}
	fd := int(f.Fd())
	return func() int {
		if !term.IsTerminal(fd) {
			return DefaultWidth
		}
		width, _, err := term.GetSize(fd)
		if err != nil || width <= 0 {
			return DefaultWidth
		}
		return width
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
