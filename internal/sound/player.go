//go:build ebiten

package sound

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// minGap keeps back-to-back generations from stacking tones.
const minGap = 90 * time.Millisecond

// Player plays one blip per generation while unmuted.
type Player struct {
	ctx    *audio.Context
	volume float64
	muted  bool
	last   time.Time
	active *audio.Player
}

// NewPlayer attaches to the process audio context, creating it if needed.
// Only one context may exist per process, so an existing context with a
// different sample rate is an error.
func NewPlayer(volume float64) (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	} else if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, need %d", ctx.SampleRate(), SampleRate)
	}
	return &Player{ctx: ctx, volume: volume}, nil
}

// Muted reports whether playback is off.
func (p *Player) Muted() bool { return p == nil || p.muted }

// ToggleMute flips the mute state.
func (p *Player) ToggleMute() {
	if p == nil {
		return
	}
	p.muted = !p.muted
}

// Tick plays a blip pitched by population density.
func (p *Player) Tick(population, total int) {
	if p == nil || p.muted || p.volume <= 0 {
		return
	}
	now := time.Now()
	if now.Sub(p.last) < minGap {
		return
	}
	p.last = now
	if p.active != nil && p.active.IsPlaying() {
		return
	}
	pcm := Blip(PitchFor(population, total), BlipDuration, p.volume)
	p.active = p.ctx.NewPlayerFromBytes(pcm)
	p.active.Play()
}
