// Package audio synthesizes the game's sound effects and plays them
// through the system speaker. All effects are generated, no sample files.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player manages the speaker and mixes short effect streams into it.
// The zero of each method on an uninitialized or muted Player is a no-op,
// so gameplay code can fire cues unconditionally.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Call Initialize before use; a player that
// was never initialized silently drops every cue.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer. Safe to call more
// than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close drops all queued sounds. The speaker itself stays open; beep
// provides no way to close it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted toggles sound output without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(s)
}

// WallBounce plays a short mid tone when the ball hits a wall or paddle.
func (p *Player) WallBounce() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*50), NewToneGenerator(sampleRate, 660)))
}

// BrickHit plays a higher blip when a brick is struck.
func (p *Player) BrickHit() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*60), NewToneGenerator(sampleRate, 990)))
}

// LifeLost plays a falling sweep when the ball drops off the playfield.
func (p *Player) LifeLost() {
	d := time.Millisecond * 400
	p.play(beep.Take(sampleRate.N(d), NewSweepGenerator(sampleRate, 520, 130, d)))
}

// StageClear plays a rising arpeggio when a stage's last brick falls.
func (p *Player) StageClear() {
	// C5 E5 G5 C6
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	p.play(NewArpeggioGenerator(sampleRate, notes, time.Millisecond*120))
}

// GameOver plays a long falling sweep.
func (p *Player) GameOver() {
	d := time.Millisecond * 900
	p.play(beep.Take(sampleRate.N(d), NewSweepGenerator(sampleRate, 440, 65, d)))
}
