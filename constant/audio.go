package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive cues; key repeat would otherwise stack tones
	MinSoundGap = 40 * time.Millisecond
)

// Step Cue
// Short soft blip on every viewport change
const (
	StepSoundFreq     = 880.0
	StepSoundDuration = 30 * time.Millisecond
	StepSoundAttack   = 3 * time.Millisecond
	StepSoundRelease  = 15 * time.Millisecond
)

// Limit Cue
// Low buzz when an iteration change is clamped
const (
	LimitSoundFreq     = 110.0
	LimitSoundDuration = 90 * time.Millisecond
	LimitSoundAttack   = 5 * time.Millisecond
	LimitSoundRelease  = 30 * time.Millisecond
)

// SoundType identifies a feedback cue
// Declared here so the control loop can request cues without linking the audio backend
type SoundType uint8

const (
	SoundStep  SoundType = iota // Viewport changed
	SoundLimit                  // Iteration change hit the clamp
	SoundTypeCount
)
