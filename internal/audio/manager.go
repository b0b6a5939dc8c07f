// Package audio plays the game's synthesized sound effects through the
// system speaker. Effects are short sine tones with an exponential fade,
// generated on the fly; nothing is loaded from disk.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Jump is a short C5 blip, coin a brighter C6 one.
const (
	jumpFreq = 523.25
	jumpDur  = 80 * time.Millisecond
	jumpAmp  = 0.35

	coinFreq = 1046.50
	coinDur  = 50 * time.Millisecond
	coinAmp  = 0.30
)

// Manager owns the speaker and a mixer the effect generators are added
// to. A Manager that failed to initialize swallows Play calls silently,
// so the game runs fine on machines without an audio device.
type Manager struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewManager creates a manager with audio disabled; call Initialize.
func NewManager() *Manager {
	return &Manager{}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	m.mixer = &beep.Mixer{}
	speaker.Play(m.mixer)
	m.enabled = true
	return nil
}

// Enabled reports whether the speaker initialized successfully.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Play queues the effect for a sound event. Unknown events and calls on
// a disabled manager are no-ops.
func (m *Manager) Play(ev core.SoundEvent) {
	switch ev {
	case core.SoundJump:
		m.playTone(jumpFreq, jumpDur, jumpAmp)
	case core.SoundCoin:
		m.playTone(coinFreq, coinDur, coinAmp)
	}
}

// PlayAll queues the effects of one tick in order.
func (m *Manager) PlayAll(events []core.SoundEvent) {
	for _, ev := range events {
		m.Play(ev)
	}
}

func (m *Manager) playTone(freq float64, dur time.Duration, amp float64) {
	m.mu.Lock()
	enabled, mixer := m.enabled, m.mixer
	m.mu.Unlock()
	if !enabled {
		return
	}

	gen := newTone(sampleRate, freq, dur, amp)
	speaker.Lock()
	mixer.Add(gen)
	speaker.Unlock()
}

// Close shuts the speaker down.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.enabled {
		speaker.Close()
		m.enabled = false
	}
}
