package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/galactic-defender/internal/core"
)

// Player plays sound triggers. Implementations never block the caller.
type Player interface {
	Play(sounds ...core.Sound)
	Close()
}

// Silent discards every sound. Used when audio is muted or the device
// cannot be opened.
type Silent struct{}

// Play implements Player.
func (Silent) Play(...core.Sound) {}

// Close implements Player.
func (Silent) Close() {}

// Synth mixes tones into the default speaker.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSynth creates a synthesizer with the given master volume in [0, 1].
// Nothing is played until Init succeeds.
func NewSynth(volume float64) *Synth {
	return &Synth{mixer: &beep.Mixer{}, volume: core.ClampF(volume, 0, 1)}
}

// Init opens the speaker.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues one tone per sound. Unknown sounds are ignored.
func (s *Synth) Play(sounds ...core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || len(sounds) == 0 {
		return
	}
	streams := make([]beep.Streamer, 0, len(sounds))
	for _, snd := range sounds {
		if t, ok := Tones[snd]; ok {
			streams = append(streams, Streamer(sampleRate, t, s.volume))
		}
	}
	speaker.Lock()
	s.mixer.Add(streams...)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Open returns a working synthesizer, or Silent with the error when muted
// is false and the speaker cannot be opened.
func Open(muted bool, volume float64) (Player, error) {
	if muted {
		return Silent{}, nil
	}
	s := NewSynth(volume)
	if err := s.Init(); err != nil {
		return Silent{}, err
	}
	return s, nil
}
