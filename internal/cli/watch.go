package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rileyhilliard/toast/internal/display"
	"github.com/rileyhilliard/toast/internal/errors"
	"github.com/rileyhilliard/toast/internal/logger"
	"github.com/rileyhilliard/toast/internal/thermal"
	"github.com/rileyhilliard/toast/internal/ui"
	"github.com/rileyhilliard/toast/internal/watch"
)

// tickSleep waits out one countdown tick. Tests replace it.
var tickSleep watch.SleepFunc = watch.Sleep

// runWatch polls until ctx is cancelled. Registration and display setup
// failures return before the loop starts; an interrupt returns an
// ExitError with ExitInterrupt once everything is released.
func runWatch(ctx context.Context, stdout, stderr io.Writer, src thermal.Source, bar bool, log logger.Logger) error {
	m, err := thermal.Open(src)
	if err != nil {
		return err
	}
	defer m.Close()

	kind := display.KindPlain
	if bar {
		kind = display.KindBar
	}
	mode, err := display.New(kind, stdout, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := mode.Close(); err != nil {
			log.Error("%v", err)
		}
	}()

	fmt.Fprintln(stderr, ui.WatchBanner())
	log.Debug("watching with %s display", kind)

	loop := watch.New(m, mode, log)
	loop.Sleep = tickSleep

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return errors.NewExitError(errors.ExitInterrupt)
	}
	return err
}
