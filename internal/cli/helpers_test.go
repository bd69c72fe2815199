package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/toast/internal/thermal"
	thermaltest "github.com/rileyhilliard/toast/internal/thermal/testing"
	"github.com/stretchr/testify/require"
)

// isolate keeps the test away from the real config file and TOAST_*
// variables on the machine running it.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"TOAST_WATCH", "TOAST_BAR", "TOAST_FORMAT", "TOAST_NO_COLOR",
		"TOAST_VERBOSE", "TOAST_LOG_LEVEL", "TOAST_DEBUG", "NO_COLOR",
	} {
		t.Setenv(key, "")
	}
}

// useSource makes the commands read from src.
func useSource(t *testing.T, src *thermaltest.FakeSource) {
	t.Helper()
	orig := newSource
	newSource = func() thermal.Source { return src }
	t.Cleanup(func() { newSource = orig })
}

// interruptAfter makes watch mode stop as if interrupted once n ticks
// have been slept.
func interruptAfter(t *testing.T, n int) {
	t.Helper()
	orig := tickSleep
	calls := 0
	tickSleep = func(ctx context.Context, d time.Duration) error {
		calls++
		if calls >= n {
			return context.Canceled
		}
		return nil
	}
	t.Cleanup(func() { tickSleep = orig })
}

// runCLI runs the command tree and captures both streams.
func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// writeConfig writes content to a config file in a temp dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
