package audio

import "github.com/lixenwraith/vi-mandel/constant"

// SoundType is the cue identifier shared with the engine
type SoundType = constant.SoundType

const (
	SoundStep  = constant.SoundStep
	SoundLimit = constant.SoundLimit

	soundTypeCount = constant.SoundTypeCount
)

// AudioConfig holds cue playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}
