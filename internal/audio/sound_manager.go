// Package audio plays short synthesized effects for gameplay events.
// Playback is optional: without an audio device the manager stays silent.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps how many effects play at once.
const maxVoices = 8

// SoundManager owns the speaker and mixes event effects.
// A nil *SoundManager is valid and silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	logger      *log.Logger

	// play adds a streamer to the output; false means it was dropped.
	play func(beep.Streamer) bool
}

// NewSoundManager creates a manager. Call Initialize to open the device.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. On failure the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		sm.logger.Warn("audio disabled", "err", err)
		return err
	}

	speaker.Play(sm.mixer)
	sm.play = func(s beep.Streamer) bool {
		speaker.Lock()
		defer speaker.Unlock()
		if sm.mixer.Len() >= maxVoices {
			return false
		}
		sm.mixer.Add(s)
		return true
	}
	sm.initialized = true
	return nil
}

// Cleanup silences everything and releases the speaker.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
	sm.play = nil
}

// SetMuted mutes or unmutes new effects.
func (sm *SoundManager) SetMuted(muted bool) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips the mute state and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	if sm == nil {
		return true
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether effects are muted.
func (sm *SoundManager) Muted() bool {
	if sm == nil {
		return true
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleEvents plays the effect for each event of a tick.
// Repeated events within one tick play once.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	if sm == nil || len(events) == 0 {
		return
	}
	var seen [16]bool
	for _, e := range events {
		if int(e) < len(seen) {
			if seen[e] {
				continue
			}
			seen[e] = true
		}
		sm.Play(e)
	}
}

// Play starts the effect bound to e, if any.
func (sm *SoundManager) Play(e core.Event) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sm.play == nil {
		return
	}
	effect, ok := Effects[e]
	if !ok {
		return
	}
	if !sm.play(effect.Build(sampleRate)) {
		sm.logger.Debug("effect dropped", "event", e)
	}
}
