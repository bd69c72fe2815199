package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearLine  = "\x1b[2K"
)

func newTestSurface(height int) (*InlineSurface, *bytes.Buffer) {
	var buf bytes.Buffer
	s := NewInlineSurface(&buf, height)
	s.SetWidthFunc(func() int { return 40 })
	return s, &buf
}

func TestInlineSurfaceFirstDraw(t *testing.T) {
	s, buf := newTestSurface(2)

	require.NoError(t, s.Draw([]string{"a", "b"}))

	assert.Equal(t, hideCursor+"\r"+clearLine+"a\n"+clearLine+"b", buf.String())
}

func TestInlineSurfaceRedrawsInPlace(t *testing.T) {
	s, buf := newTestSurface(2)
	require.NoError(t, s.Draw([]string{"a", "b"}))
	buf.Reset()

	require.NoError(t, s.Draw([]string{"c"}))

	// Back to the top of the region, then every row is cleared, including
	// the one with no new content.
	assert.Equal(t, "\r\x1b[1A"+clearLine+"c\n"+clearLine, buf.String())
}

func TestInlineSurfaceDropsExtraLines(t *testing.T) {
	s, buf := newTestSurface(1)

	require.NoError(t, s.Draw([]string{"a", "b", "c"}))

	assert.Equal(t, hideCursor+"\r"+clearLine+"a", buf.String())
}

func TestInlineSurfaceInsertBefore(t *testing.T) {
	s, buf := newTestSurface(2)
	require.NoError(t, s.Draw([]string{"a", "b"}))
	buf.Reset()

	require.NoError(t, s.InsertBefore("changed"))

	assert.Equal(t, "\r\x1b[1A"+clearLine+"changed\n"+clearLine+"a\n"+clearLine+"b", buf.String())
}

func TestInlineSurfaceInsertBeforeFirstDraw(t *testing.T) {
	s, buf := newTestSurface(2)

	require.NoError(t, s.InsertBefore("first"))

	assert.Equal(t, "\r"+clearLine+"first\n", buf.String())
}

func TestInlineSurfaceClose(t *testing.T) {
	s, buf := newTestSurface(2)
	require.NoError(t, s.Draw([]string{"a", "b"}))
	buf.Reset()

	require.NoError(t, s.Close())
	assert.Equal(t, "\r\n"+showCursor, buf.String())

	buf.Reset()
	require.NoError(t, s.Close())
	assert.Empty(t, buf.String(), "second close writes nothing")
}

func TestInlineSurfaceCloseWithoutDraw(t *testing.T) {
	s, buf := newTestSurface(2)

	require.NoError(t, s.Close())
	assert.Empty(t, buf.String())
}

func TestInlineSurfaceWidth(t *testing.T) {
	s, _ := newTestSurface(2)
	assert.Equal(t, 40, s.Width())

	s.SetWidthFunc(func() int { return 0 })
	assert.Equal(t, 1, s.Width(), "width is clamped to one column")
}

func TestInlineSurfaceDefaultWidth(t *testing.T) {
	s := NewInlineSurface(&bytes.Buffer{}, 4)
	assert.Equal(t, DefaultWidth, s.Width())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestInlineSurfaceWriteError(t *testing.T) {
	s := NewInlineSurface(failingWriter{}, 2)

	err := s.Draw([]string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
