package display

import "errors"

// fakeSurface records what a display asks it to draw.
type fakeSurface struct {
	width    int
	frames   [][]string
	inserted []string
	closed   int
	fail     bool
}

func newFakeSurface(width int) *fakeSurface {
	return &fakeSurface{width: width}
}

func (f *fakeSurface) Width() int { return f.width }

func (f *fakeSurface) Draw(lines []string) error {
	if f.fail {
		return errors.New("terminal gone")
	}
	f.frames = append(f.frames, append([]string(nil), lines...))
	return nil
}

func (f *fakeSurface) InsertBefore(line string) error {
	if f.fail {
		return errors.New("terminal gone")
	}
	f.inserted = append(f.inserted, line)
	return nil
}

func (f *fakeSurface) Close() error {
	f.closed++
	return nil
}

func (f *fakeSurface) lastFrame() []string {
	if len(f.frames) == 0 {
		return nil
	}
	return f.frames[len(f.frames)-1]
}
