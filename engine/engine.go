// Package engine runs the viewer loop: render, draw, poll, dispatch.
package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/render"
	"github.com/lixenwraith/vi-mandel/status"
	"github.com/lixenwraith/vi-mandel/terminal"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// Display draws a rendered frame plus info lines
type Display interface {
	Draw(frame *render.Frame, lines []string) error
}

// Input delivers terminal events
type Input interface {
	// Poll waits up to timeout and reports whether Read will return an event without blocking
	Poll(timeout time.Duration) (bool, error)
	Read() (terminal.Event, error)
}

// Sound plays feedback cues
type Sound interface {
	Play(soundType constant.SoundType)
}

// State is the loop lifecycle
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

// Config wires the engine collaborators; Display and Input are required
type Config struct {
	Display Display
	Input   Input
	Keys    *input.KeyTable  // nil selects input.DefaultKeyTable
	Sound   Sound            // optional
	Metrics *status.Registry // nil creates a private registry
}

// Engine owns the viewport and drives the redraw loop
type Engine struct {
	display Display
	in      Input
	keys    *input.KeyTable
	sound   Sound
	metrics *status.Registry

	view  viewport.Viewport
	state State

	// Cached metric pointers
	frames     *atomic.Int64
	keyCount   *atomic.Int64
	renderUs   *atomic.Int64
	zoom       *status.Gauge
	lastAction *status.Label
}

// New creates an engine in StateRunning with the default viewport
func New(cfg Config) *Engine {
	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	e := &Engine{
		display: cfg.Display,
		in:      cfg.Input,
		keys:    keys,
		sound:   cfg.Sound,
		metrics: metrics,
		view:    viewport.Default(),
		state:   StateRunning,

		frames:     metrics.Ints.Get("engine.frames"),
		keyCount:   metrics.Ints.Get("engine.keys"),
		renderUs:   metrics.Ints.Get("render.last_us"),
		zoom:       metrics.Floats.Get("view.zoom"),
		lastAction: metrics.Strings.Get("input.last_action"),
	}
	e.zoom.Set(e.view.Zoom)
	return e
}

// Viewport returns a copy of the current viewport
func (e *Engine) Viewport() viewport.Viewport {
	return e.view
}

// State returns the loop state
func (e *Engine) State() State {
	return e.state
}

// Metrics returns the registry the engine reports into
func (e *Engine) Metrics() *status.Registry {
	return e.metrics
}

// Run loops until a quit action or a collaborator error
// Each tick redraws, then waits up to constant.PollTimeout for one event
func (e *Engine) Run() error {
	for e.state == StateRunning {
		if err := e.draw(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		ready, err := e.in.Poll(constant.PollTimeout)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if !ready {
			continue
		}

		ev, err := e.in.Read()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		e.handleEvent(ev)
	}
	return nil
}

// draw renders the current viewport and hands it to the display
func (e *Engine) draw() error {
	start := time.Now()
	frame := render.Render(e.view, constant.GridWidth, constant.GridHeight)
	e.renderUs.Store(time.Since(start).Microseconds())

	lines := []string{e.keys.Help(), render.StatusLine(e.view)}
	if err := e.display.Draw(frame, lines); err != nil {
		return err
	}
	e.frames.Add(1)
	return nil
}
