// Package audio synthesizes the eat tone and plays it on the available backend.
package audio

import (
	"math"
	"time"
)

// Player plays the eat sound. Failures are reported, never fatal.
type Player interface {
	Play() error
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play() error { return nil }

// Tone is a decaying sine beep.
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

const (
	amplitude = 0.2
	decay     = 3.0
)

// sample returns the tone's value at t seconds, in [-1, 1].
func (t Tone) sample(sec float64) float64 {
	return math.Sin(2*math.Pi*t.Frequency*sec) * amplitude * math.Exp(-decay*sec)
}

// Samples returns the number of frames the tone spans at the given rate.
func (t Tone) Samples(sampleRate int) int {
	if t.Duration <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(float64(sampleRate) * t.Duration.Seconds())
}

// PCM renders the tone as interleaved signed 16-bit little-endian stereo.
func (t Tone) PCM(sampleRate int) []byte {
	n := t.Samples(sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(t.sample(float64(i)/float64(sampleRate)) * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
