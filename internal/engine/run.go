package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/leob-arcade/internal/core"
)

// Driver connects the engine loop to a terminal or window.
type Driver interface {
	// Poll returns the input snapshot for the next frame, or false once the
	// user asked to quit.
	Poll() (core.InputFrame, bool)
	// Canvas returns the surface for the next frame.
	Canvas() *core.Canvas
	// Present shows the drawn frame.
	Present() error
}

// Clock paces Run and reports the elapsed time per frame in seconds.
type Clock interface {
	Wait(ctx context.Context) (float64, error)
}

// TickerClock is a wall-clock Clock ticking at a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
	last   time.Time
}

// NewTickerClock creates a clock ticking hz times per second.
func NewTickerClock(hz int) *TickerClock {
	if hz <= 0 {
		hz = 60
	}
	return &TickerClock{
		ticker: time.NewTicker(time.Second / time.Duration(hz)),
		last:   time.Now(),
	}
}

// Wait blocks until the next tick and returns the time since the previous one.
func (c *TickerClock) Wait(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case t := <-c.ticker.C:
		dt := t.Sub(c.last).Seconds()
		c.last = t
		return dt, nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// FixedClock returns the same dt on every Wait without blocking.
type FixedClock struct {
	DT float64
}

func (c FixedClock) Wait(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.DT, nil
}

// Run drives frames until the driver reports quit, Quit is called or ctx is
// cancelled. A started frame always completes. Poll comes first in a frame,
// so a quit from the driver returns before that frame updates or draws.
// The engine is stopped on return. Driver errors are returned wrapped;
// cancellation returns ctx.Err().
func (e *Engine) Run(ctx context.Context, d Driver) error {
	if e.state == StateStopped {
		return ErrStopped
	}
	e.setState(StateRunning)
	defer e.Stop()

	clock := e.clock
	if clock == nil {
		tc := NewTickerClock(e.tickRate)
		defer tc.Stop()
		clock = tc
	}

	for !e.quit {
		dt, err := clock.Wait(ctx)
		if err != nil {
			return err
		}

		in, ok := d.Poll()
		if !ok {
			e.logger.Debug("driver quit", "frames", e.frames)
			return nil
		}

		e.Frame(dt, in, d.Canvas())
		if err := d.Present(); err != nil {
			return fmt.Errorf("engine: present: %w", err)
		}
	}

	e.logger.Debug("quit requested", "frames", e.frames)
	return nil
}
