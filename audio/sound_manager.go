package audio

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays gameplay feedback tones through a single speaker mixer.
// All Play methods are no-ops until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager for cfg; nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Returns nil without touching the device when
// audio is disabled in config.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("Audio initialized at %d Hz, master volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Cleanup stops playback and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores feedback tones
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// PlayEat plays the food pickup tone
func (sm *SoundManager) PlayEat() {
	sm.play(SoundEat, eatTone(sm.rate))
}

// PlayDeath plays the wall collision tone
func (sm *SoundManager) PlayDeath() {
	sm.play(SoundDeath, deathTone(sm.rate))
}

func (sm *SoundManager) play(st SoundType, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	v := sm.volume(st)
	if v <= 0 {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, v))
	speaker.Unlock()
}

// volume is the linear gain for st: master times per-effect
func (sm *SoundManager) volume(st SoundType) float64 {
	effect, ok := sm.cfg.EffectVolumes[st]
	if !ok {
		effect = 1.0
	}
	return sm.cfg.MasterVolume * effect
}

// withVolume scales s by a linear gain in (0, 1]
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(gain),
		Silent:   gain <= 0,
	}
}
