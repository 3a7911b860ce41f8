// Package audio provides race sound effects. All cues are short
// synthesized tones, so no sound assets ship with the game.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager owns the speaker and mixes concurrent sound effects.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	mixer  *beep.Mixer
	volume *effects.Volume

	masterVolume float64
}

// New creates a new audio manager.
func New() *Manager {
	m := &Manager{
		masterVolume: 1.0,
		mixer:        &beep.Mixer{},
	}
	m.volume = &effects.Volume{
		Streamer: m.mixer,
		Base:     2,
		Volume:   0,
	}
	return m
}

// Init initializes the speaker and starts the effect mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.volume)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.masterVolume = clamp(vol, 0, 1)
	speaker.Lock()
	if m.masterVolume <= 0 {
		m.volume.Silent = true
	} else {
		m.volume.Silent = false
		m.volume.Volume = volumeToDb(m.masterVolume)
	}
	speaker.Unlock()
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// CountdownBeep plays the short per-second beep before the race.
func (m *Manager) CountdownBeep() { m.play(880, 100*time.Millisecond) }

// StartTone plays the longer, higher tone when control is handed over.
func (m *Manager) StartTone() { m.play(1320, 300*time.Millisecond) }

// PickupChime plays the sword collection chime.
func (m *Manager) PickupChime() { m.play(1568, 150*time.Millisecond) }

// LapTone plays the lap completion tone.
func (m *Manager) LapTone() { m.play(660, 250*time.Millisecond) }

func (m *Manager) play(freq float64, d time.Duration) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return
	}
	t := newTone(m.sampleRate, freq, m.sampleRate.N(d))
	speaker.Lock()
	m.mixer.Add(t)
	speaker.Unlock()
}

// tone is a sine burst with a linear fade-out so cues end without a
// click.
type tone struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

func newTone(sr beep.SampleRate, freq float64, length int) *tone {
	return &tone{sr: sr, freq: freq, length: length}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}
		env := 1 - float64(t.pos)/float64(t.length)
		v := 0.25 * env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// volumeToDb converts a 0-1 volume to the decibel scale effects.Volume
// expects with Base 2: vol=1 -> 0, vol=0.5 -> -1 octave.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
