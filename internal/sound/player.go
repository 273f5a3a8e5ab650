package sound

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/verte-zerg/typerush/internal/engine"
)

// SampleRate of the speaker output.
const SampleRate beep.SampleRate = 44100

// Player plays tones without blocking the caller.
type Player interface {
	Play(t Tone)
}

// Speaker plays tones through the system audio device.
type Speaker struct {
	rate     beep.SampleRate
	volumeDB float64
}

// NewSpeaker initializes the audio device. volumeDB adjusts loudness
// (negative is quieter).
func NewSpeaker(volumeDB float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Speaker{rate: SampleRate, volumeDB: volumeDB}, nil
}

// Play queues t on the speaker mixer.
func (s *Speaker) Play(t Tone) {
	speaker.Play(&effects.Volume{
		Streamer: Oscillator(s.rate, t),
		Base:     2,
		Volume:   s.volumeDB,
	})
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}

// Subscriber turns keystroke verdicts into tones.
type Subscriber struct {
	player  Player
	enabled atomic.Bool
	logger  *slog.Logger
}

// NewSubscriber returns a subscriber playing through player. A nil player
// makes the subscriber silent.
func NewSubscriber(player Player, enabled bool, logger *slog.Logger) *Subscriber {
	s := &Subscriber{player: player, logger: logger}
	s.enabled.Store(enabled && player != nil)
	return s
}

// Enabled reports whether tones are played.
func (s *Subscriber) Enabled() bool {
	return s.enabled.Load()
}

// Toggle flips sound on or off and returns the new state. Without a
// player sound stays off.
func (s *Subscriber) Toggle() bool {
	if s.player == nil {
		s.logger.Debug("sound toggle ignored, no audio device")
		return false
	}
	next := !s.enabled.Load()
	s.enabled.Store(next)
	return next
}

// OnKeystroke plays the tone for ks.
func (s *Subscriber) OnKeystroke(ks engine.Keystroke) {
	if !s.enabled.Load() {
		return
	}
	if ks.Verdict.IsCorrect() {
		s.player.Play(CorrectTone)
		return
	}
	s.player.Play(IncorrectTone)
}
