// Package watch runs the poll loop behind `toast --watch`.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/toast/internal/config"
	"github.com/rileyhilliard/toast/internal/logger"
	"github.com/rileyhilliard/toast/internal/thermal"
)

// Reader produces classified readings. *thermal.Monitor satisfies it.
type Reader interface {
	Read() (thermal.Pressure, error)
}

// Handler receives the loop's events. *display.Mode satisfies it.
type Handler interface {
	OnReading(p thermal.Pressure)
	OnChange(p thermal.Pressure)
	OnTick(caption string)
	OnCycleEnd()
}

// SleepFunc blocks for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Loop polls a Reader on a fixed cadence and forwards readings, changes
// and countdown ticks to a Handler.
type Loop struct {
	Reader  Reader
	Handler Handler
	Logger  logger.Logger

	// Interval is the number of ticks between reads.
	Interval int
	// Tick is the length of one countdown step.
	Tick time.Duration
	// Sleep waits out a tick. Tests swap it for something instant.
	Sleep SleepFunc
}

// New creates a loop with the standard five second cadence.
func New(reader Reader, handler Handler, log logger.Logger) *Loop {
	if log == nil {
		log = logger.Noop()
	}
	return &Loop{
		Reader:   reader,
		Handler:  handler,
		Logger:   log,
		Interval: config.CheckInterval,
		Tick:     config.TickDuration,
		Sleep:    Sleep,
	}
}

// Run polls until ctx is cancelled and then returns ctx.Err(). Read
// failures are logged and never end the loop.
func (l *Loop) Run(ctx context.Context) error {
	var last *thermal.Pressure
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		last = l.Poll(last)

		if err := l.Countdown(ctx); err != nil {
			return err
		}
		l.Handler.OnCycleEnd()
	}
}

// Poll takes one reading and dispatches it. OnChange fires on the first
// reading and whenever the level differs from last. It returns the new
// last observed level, which is unchanged when the read fails.
func (l *Loop) Poll(last *thermal.Pressure) *thermal.Pressure {
	p, err := l.Reader.Read()
	if err != nil {
		l.Logger.Error("%v", err)
		return last
	}

	l.Logger.Debug("thermal pressure %s (ordinal %d)", p, p.Level())
	l.Handler.OnReading(p)
	if last == nil || *last != p {
		l.Handler.OnChange(p)
		last = &p
	}
	return last
}

// Countdown ticks from Interval down to 1, showing the time left before
// each sleep.
func (l *Loop) Countdown(ctx context.Context) error {
	for remaining := l.Interval; remaining >= 1; remaining-- {
		l.Handler.OnTick(Caption(remaining))
		if err := l.Sleep(ctx, l.Tick); err != nil {
			return err
		}
	}
	return nil
}

// Caption formats the countdown shown while waiting for the next read.
func Caption(remaining int) string {
	return fmt.Sprintf("Next check in %ds", remaining)
}

// Sleep waits for d, returning early with ctx.Err() if ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
