//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pkg/errors"

	snd "gridsnake/internal/audio"
)

const sampleRate = 44100

// Beeper plays the eat tone through ebiten's audio context.
type Beeper struct {
	player *audio.Player
}

// NewBeeper renders the tone once and keeps a player for it.
func NewBeeper(tone snd.Tone) *Beeper {
	ctx := audio.NewContext(sampleRate)
	return &Beeper{player: ctx.NewPlayerFromBytes(tone.PCM(sampleRate))}
}

// Play restarts the tone from the beginning.
func (b *Beeper) Play() error {
	if err := b.player.Rewind(); err != nil {
		return errors.Wrap(err, "rewind eat sound")
	}
	b.player.Play()
	return nil
}
