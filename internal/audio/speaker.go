package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const speakerRate = beep.SampleRate(48000)

// toneStreamer is an endless beep.Streamer over a Tone.
type toneStreamer struct {
	tone Tone
	rate beep.SampleRate
	pos  int
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.tone.sample(float64(s.pos) / float64(s.rate))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// Stream returns a finite streamer playing the tone once.
func (t Tone) Stream(rate beep.SampleRate) beep.Streamer {
	return beep.Take(rate.N(t.Duration), &toneStreamer{tone: t, rate: rate})
}

// Speaker plays tones through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	tone   Tone
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker(tone Tone) (*Speaker, error) {
	if err := speaker.Init(speakerRate, speakerRate.N(100*time.Millisecond)); err != nil {
		return nil, errors.Wrap(err, "open audio device")
	}
	s := &Speaker{tone: tone, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues one tone on the mixer.
func (s *Speaker) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("speaker closed")
	}
	speaker.Lock()
	s.mixer.Add(s.tone.Stream(speakerRate))
	speaker.Unlock()
	return nil
}

// Close silences the mixer. Later Play calls fail.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
