package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a plain sine tone with a short fade-in so
// rapid-fire cues do not click.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a sine tone generator at freq Hz.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t)

		// 5ms fade-in against clicks
		envelope := math.Min(t/0.005, 1.0)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator produces a tone gliding linearly between two frequencies
// over its cycle, fading out toward the end.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	samples  int
}

// NewSweepGenerator creates a frequency sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress

		sample := 0.3 * math.Sin(2*math.Pi*g.phase)

		// Fade out over the last third
		if progress > 0.66 {
			sample *= (1 - progress) / 0.34
		}

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a fixed note sequence, one note per step, with a
// per-note decay envelope. Used for the stage-clear jingle.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	phase   float64
	pos     int
}

// NewArpeggioGenerator creates an arpeggio over notes, each lasting step.
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, step time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:      sr,
		notes:   notes,
		noteLen: sr.N(step),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.noteLen
		if idx >= len(g.notes) {
			return i, false
		}
		freq := g.notes[idx]

		notePos := g.pos % g.noteLen
		envelope := 1.0 - float64(notePos)/float64(g.noteLen)

		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
