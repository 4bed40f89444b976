// Package console drives engine games straight on a tcell screen, without
// Bubble Tea. The engine owns the loop; the driver only turns terminal
// events into input frames and blits finished frames.
package console

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/leob-arcade/internal/core"
	"github.com/vovakirdan/leob-arcade/internal/platform/tui"
)

// Option configures a Driver.
type Option func(*Driver)

// WithOverlay sets a function drawn over every frame before it is shown,
// typically an engine game's HUD.
func WithOverlay(f func(*core.Screen)) Option {
	return func(d *Driver) {
		d.overlay = f
	}
}

// WithLogger sets the logger for driver events.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// Driver implements engine.Driver on a tcell screen.
type Driver struct {
	screen  tcell.Screen
	canvas  *core.Canvas
	keys    *core.HeldKeys
	overlay func(*core.Screen)
	logger  *log.Logger

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a driver on an initialized screen. world is the game's
// coordinate space, scaled onto the screen's cells.
func New(screen tcell.Screen, world core.Vector2, tickRate int, opts ...Option) *Driver {
	w, h := screen.Size()
	d := &Driver{
		screen: screen,
		canvas: core.NewCanvas(core.NewScreen(w, h), world),
		keys:   core.NewHeldKeys(core.HoldFrames(tickRate)),
		logger: log.New(io.Discard),
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	screen.HideCursor()
	go d.pump()
	return d
}

// pump forwards terminal events until the screen is finalized.
func (d *Driver) pump() {
	defer close(d.events)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// Poll drains pending events without blocking and returns the held-key
// snapshot. It reports false once a quit key was pressed or the screen
// went away.
func (d *Driver) Poll() (core.InputFrame, bool) {
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				return core.InputFrame{}, false
			}
			if !d.handle(ev) {
				return core.InputFrame{}, false
			}
		default:
			return d.keys.Snapshot(), true
		}
	}
}

func (d *Driver) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, quit := tui.MapKeyName(keyName(ev))
		if quit {
			d.logger.Debug("quit key", "key", ev.Name())
			return false
		}
		tui.PressAction(d.keys, action)

	case *tcell.EventResize:
		w, h := ev.Size()
		d.canvas.Resize(w, h)
		d.screen.Sync()
		d.logger.Debug("resize", "width", w, "height", h)
	}
	return true
}

// keyName converts a tcell key event to the name Bubble Tea would report,
// so both backends share one key map.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	}
	return ""
}

// Canvas returns the surface the engine draws the next frame on.
func (d *Driver) Canvas() *core.Canvas {
	return d.canvas
}

// Present draws the overlay and copies the frame to the terminal.
func (d *Driver) Present() error {
	buf := d.canvas.Screen()
	if d.overlay != nil {
		d.overlay(buf)
	}

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.GetCell(x, y)
			d.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	d.screen.Show()
	return nil
}

// Close stops the event pump and restores the terminal.
func (d *Driver) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
		d.screen.Fini()
	})
}

func styleFor(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}
