// Package sound plays short feedback tones for keystrokes.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Waveform is the oscillator shape of a tone.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Square
)

// Tone is a short beep with an exponential fade-out.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Waveform
	Gain     float64
}

// Feedback tones for typed characters.
var (
	CorrectTone   = Tone{Freq: 880, Duration: 50 * time.Millisecond, Wave: Triangle, Gain: 0.1}
	IncorrectTone = Tone{Freq: 220, Duration: 150 * time.Millisecond, Wave: Square, Gain: 0.1}
)

// floor of the fade-out, relative to the starting gain.
const fadeFloor = 0.001

// Oscillator returns a finite streamer rendering t at rate.
func Oscillator(rate beep.SampleRate, t Tone) beep.Streamer {
	total := rate.N(t.Duration)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := Sample(t, float64(pos)/float64(rate), total, pos)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}

// Sample returns the amplitude of t at time sec, sample index pos of total.
func Sample(t Tone, sec float64, total, pos int) float64 {
	phase := math.Mod(sec*t.Freq, 1)
	var v float64
	switch t.Wave {
	case Square:
		if phase < 0.5 {
			v = 1
		} else {
			v = -1
		}
	case Triangle:
		v = 4*math.Abs(phase-0.5) - 1
	default:
		v = math.Sin(2 * math.Pi * phase)
	}
	envelope := 1.0
	if total > 0 {
		envelope = math.Pow(fadeFloor, float64(pos)/float64(total))
	}
	return v * t.Gain * envelope
}
