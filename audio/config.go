package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/vi-mandel/constant"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "VI_MANDEL_AUDIO_ENABLED"
	EnvMasterVolume = "VI_MANDEL_MASTER_VOLUME"
	EnvSampleRate   = "VI_MANDEL_SAMPLE_RATE"
)

// DefaultAudioConfig returns silent-by-default settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundStep:  0.4,
			SoundLimit: 0.8,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Invalid values are ignored and leave the default in place
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
