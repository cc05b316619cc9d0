package haptic

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// ToneSink renders pulses as short sine beeps on the default audio device,
// for machines that have a speaker but no vibration motor.
type ToneSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	frequency   float64
	volume      float64
	initialized bool
}

// NewToneSink creates a sink beeping at frequency Hz. volume is a linear gain in (0, 1].
func NewToneSink(frequency, volume float64) *ToneSink {
	return &ToneSink{
		mixer:     &beep.Mixer{},
		frequency: frequency,
		volume:    volume,
	}
}

// Init opens the speaker. Pulses before Init are dropped.
func (s *ToneSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Pulse queues a beep of length d.
func (s *ToneSink) Pulse(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st, err := Tone(sampleRate, s.frequency, d, s.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences pending pulses. The speaker itself stays open.
func (s *ToneSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Tone builds a finite sine streamer of length d.
func Tone(sr beep.SampleRate, frequency float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   math.Log2(volume),
		Silent:   volume <= 0,
	}, nil
}
