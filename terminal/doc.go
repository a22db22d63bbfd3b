// Package terminal is the drawing and input collaborator of the viewer.
//
// Screen wraps a tcell screen:
//   - Draw paints a rendered frame inside a titled box plus an info panel
//   - Poll waits a bounded time for the next event; Read returns it
//   - A single pump goroutine forwards tcell's blocking PollEvent into a channel
//   - EmergencyReset restores a sane terminal from panic recovery
//
// Events and keys are translated into package-local types so the rest of the
// program never imports tcell.
package terminal
