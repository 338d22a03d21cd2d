package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// eventBufferSize bounds key events queued between frames
const eventBufferSize = 64

// Terminal is the tcell-backed rendering surface. One Terminal is opened per
// process and shared by every session; Fini releases it.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
}

// Open creates and initializes a terminal on the controlling tty
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminal(screen)
}

// NewTerminal initializes screen and starts the event pump
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBufferSize),
	}
	core.Go(t.pump)
	return t, nil
}

// pump forwards screen events until the screen is finalized
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.events <- ev
	}
}

// Clear erases all drawn content
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// DrawCell renders one glyph; cells off screen are dropped by tcell
func (t *Terminal) DrawCell(p core.Position, glyph rune, style engine.Style) {
	t.screen.SetContent(p.X, p.Y, glyph, nil, tcellStyle(style))
}

// Show presents the frame
func (t *Terminal) Show() {
	t.screen.Show()
}

// PollInput waits up to timeout for the next key. Resizes are handled in
// place and do not end the wait.
func (t *Terminal) PollInput(timeout time.Duration) (engine.Input, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return engine.Input{}, false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return MapKey(ev), true
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-timer.C:
			return engine.Input{}, false
		}
	}
}

// WaitKey blocks until a key is pressed, handling resizes meanwhile.
// Returns false if the screen was finalized.
func (t *Terminal) WaitKey(onResize func()) (*tcell.EventKey, bool) {
	for ev := range t.events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			t.screen.Sync()
			if onResize != nil {
				onResize()
			}
		}
	}
	return nil, false
}

// Size returns the screen dimensions
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Fits reports whether a board of bounds, including its far walls, fits on screen
func (t *Terminal) Fits(bounds core.Bounds) bool {
	w, h := t.screen.Size()
	return w > bounds.Width && h > bounds.Height
}

// Fini restores the terminal; the event pump exits afterwards
func (t *Terminal) Fini() {
	t.screen.Fini()
}

var _ engine.Surface = (*Terminal)(nil)
