package engine

import (
	"log"

	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/terminal"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// commands maps viewport actions to their mutators
var commands = map[input.Action]func(*viewport.Viewport){
	input.ActionZoomIn:   (*viewport.Viewport).ZoomIn,
	input.ActionZoomOut:  (*viewport.Viewport).ZoomOut,
	input.ActionPanLeft:  (*viewport.Viewport).MoveLeft,
	input.ActionPanRight: (*viewport.Viewport).MoveRight,
	input.ActionPanUp:    (*viewport.Viewport).MoveUp,
	input.ActionPanDown:  (*viewport.Viewport).MoveDown,
	input.ActionIterUp:   (*viewport.Viewport).IncreaseIterations,
	input.ActionIterDown: (*viewport.Viewport).DecreaseIterations,
}

// handleEvent resolves a key event and applies its action; other events are ignored
func (e *Engine) handleEvent(ev terminal.Event) {
	if ev.Type != terminal.EventKey {
		return
	}
	e.keyCount.Add(1)

	action := e.keys.Lookup(ev)
	e.lastAction.Store(action.String())

	switch action {
	case input.ActionNone:
		return
	case input.ActionQuit:
		log.Printf("engine: quit requested")
		e.state = StateTerminated
		return
	}

	cmd, ok := commands[action]
	if !ok {
		return
	}

	before := e.view
	cmd(&e.view)
	e.zoom.Set(e.view.Zoom)

	log.Printf("engine: %s -> zoom=%.4f center=(%.6f, %.6f) iterations=%d",
		action, e.view.Zoom, e.view.CenterX, e.view.CenterY, e.view.MaxIterations)

	switch {
	case e.view != before:
		e.cue(constant.SoundStep)
	case action == input.ActionIterUp || action == input.ActionIterDown:
		e.cue(constant.SoundLimit)
	}
}

func (e *Engine) cue(soundType constant.SoundType) {
	if e.sound != nil {
		e.sound.Play(soundType)
	}
}
