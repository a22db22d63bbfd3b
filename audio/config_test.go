package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration values
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio to be disabled by default")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected MasterVolume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected SampleRate 44100, got %d", cfg.SampleRate)
	}
	for _, st := range []SoundType{SoundStep, SoundLimit} {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected effect volume for sound %d", st)
		}
	}
}

// TestLoadAudioConfig verifies environment overrides
func TestLoadAudioConfig(t *testing.T) {
	tests := []struct {
		name       string
		enabled    string
		volume     string
		sampleRate string
		wantOn     bool
		wantVol    float64
		wantRate   int
	}{
		{"defaults", "", "", "", false, 0.5, 44100},
		{"enabled", "true", "", "", true, 0.5, 44100},
		{"volume", "1", "80", "48000", true, 0.8, 48000},
		{"clamped volume", "", "250", "", false, 1.0, 44100},
		{"invalid values", "maybe", "loud", "-5", false, 0.5, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, tt.enabled)
			t.Setenv(EnvMasterVolume, tt.volume)
			t.Setenv(EnvSampleRate, tt.sampleRate)

			cfg := LoadAudioConfig()
			if cfg.Enabled != tt.wantOn {
				t.Errorf("Expected Enabled %v, got %v", tt.wantOn, cfg.Enabled)
			}
			if cfg.MasterVolume != tt.wantVol {
				t.Errorf("Expected MasterVolume %f, got %f", tt.wantVol, cfg.MasterVolume)
			}
			if cfg.SampleRate != tt.wantRate {
				t.Errorf("Expected SampleRate %d, got %d", tt.wantRate, cfg.SampleRate)
			}
		})
	}
}
