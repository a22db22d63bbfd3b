package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-mandel/constant"
)

// Player plays short cues through the system speaker
// A nil *Player is valid and silent
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	initialized bool
	lastPlay    map[SoundType]time.Time

	// play hands a streamer to the output device, replaced in tests
	play func(beep.Streamer)
	// now is the clock used for rate limiting, replaced in tests
	now func() time.Time
}

// NewPlayer creates a player for the given config, nil selects defaults
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{
		cfg:      cfg,
		lastPlay: make(map[SoundType]time.Time),
		play:     func(s beep.Streamer) { speaker.Play(s) },
		now:      time.Now,
	}
}

// Start initializes the speaker; a disabled config is a no-op
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.initialized = true
	return nil
}

// Play queues a cue, dropping it if the same cue played within MinSoundGap
func (p *Player) Play(soundType SoundType) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	now := p.now()
	if last, ok := p.lastPlay[soundType]; ok && now.Sub(last) < constant.MinSoundGap {
		return
	}

	s := GetSoundEffect(soundType, p.cfg)
	if s == nil {
		return
	}
	p.lastPlay[soundType] = now
	p.play(s)
}

// Stop closes the speaker
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Enabled reports whether cues will reach the speaker
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
