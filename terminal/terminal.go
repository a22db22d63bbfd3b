package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/render"
)

var (
	// ErrClosed is returned by Draw, Poll and Read once the screen is finalized
	ErrClosed = errors.New("terminal closed")
)

// Screen implements the viewer's drawing and input collaborator over tcell
// Draw, Poll and Read must be called from one goroutine; Fini may be called from any
type Screen struct {
	screen  tcell.Screen
	colors  colorTable
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	// pending holds an event returned true by Poll until Read consumes it
	pending *Event

	mu        sync.Mutex
	finalized bool
}

// New opens the controlling terminal through tcell and starts the event pump
func New(mode ColorMode) (*Screen, error) {
	if err := CheckTTY(); err != nil {
		return nil, err
	}

	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return NewWithScreen(ts, mode)
}

// NewWithScreen initializes an existing tcell screen, e.g. a simulation screen in tests
func NewWithScreen(ts tcell.Screen, mode ColorMode) (*Screen, error) {
	colors, err := newColorTable(mode)
	if err != nil {
		return nil, err
	}

	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	ts.HideCursor()
	ts.DisableMouse()
	ts.SetStyle(tcell.StyleDefault)
	ts.Clear()

	s := &Screen{
		screen:  ts,
		colors:  colors,
		eventCh: make(chan tcell.Event, constant.EventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

// pump forwards tcell's blocking PollEvent into eventCh
// PollEvent returns nil once the screen is finalized; eventCh is closed on exit
func (s *Screen) pump() {
	defer close(s.doneCh)
	defer close(s.eventCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Fini restores the terminal and stops the pump. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	if s.finalized {
		s.mu.Unlock()
		return
	}
	s.finalized = true
	s.mu.Unlock()

	close(s.stopCh)
	s.screen.Fini()
	<-s.doneCh
}

func (s *Screen) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalized
}

// Size returns current terminal dimensions
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Draw paints the frame inside a titled box with the info lines in a second box below it
// Layout is anchored top-left; cells past the terminal edge are clipped by tcell
func (s *Screen) Draw(frame *render.Frame, lines []string) error {
	if s.closed() {
		return ErrClosed
	}

	s.screen.Clear()

	border := constant.BorderSize * 2
	canvas := region{s: s.screen, X: 0, Y: 0, W: frame.Width + border, H: frame.Height + border}
	canvas.box(constant.CanvasTitle, tcell.StyleDefault)

	grid := canvas.inner()
	for _, c := range frame.Cells {
		grid.cell(c.X, c.Y, c.Glyph, s.colors.style(c.Color))
	}

	info := region{s: s.screen, X: 0, Y: canvas.H, W: canvas.W, H: constant.InfoLines + border}
	info.box(constant.InfoTitle, tcell.StyleDefault)

	text := info.inner()
	for i, line := range lines {
		if i >= text.H {
			break
		}
		text.text(0, i, text.W, line, tcell.StyleDefault)
	}

	s.screen.Show()
	return nil
}

// Poll waits up to timeout for an event and reports whether one is ready for Read
// Returns ErrClosed after Fini or once the pump has stopped, or the error carried by an error event
func (s *Screen) Poll(timeout time.Duration) (bool, error) {
	if s.closed() {
		return false, ErrClosed
	}
	if s.pending != nil {
		return true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case tev, ok := <-s.eventCh:
		if !ok {
			return false, ErrClosed
		}
		ev := s.accept(tev)
		if ev.Type == EventError {
			return false, ev.Err
		}
		s.pending = &ev
		return true, nil
	case <-timer.C:
		return false, nil
	}
}

// Read returns the event found by Poll, or blocks for the next one
func (s *Screen) Read() (Event, error) {
	if s.closed() {
		return Event{Type: EventClosed}, ErrClosed
	}
	if s.pending != nil {
		ev := *s.pending
		s.pending = nil
		return ev, nil
	}

	tev, ok := <-s.eventCh
	if !ok {
		return Event{Type: EventClosed}, ErrClosed
	}
	ev := s.accept(tev)
	if ev.Type == EventError {
		return ev, ev.Err
	}
	return ev, nil
}

// accept translates an event and applies screen-side effects
func (s *Screen) accept(tev tcell.Event) Event {
	ev := translateEvent(tev)
	if ev.Type == EventResize {
		// Physical buffer no longer matches; next Show must repaint everything
		s.screen.Sync()
	}
	return ev
}
