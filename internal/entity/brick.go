package entity

import (
	"math"

	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/geom"
)

// Brick is a destructible block. Hard bricks take several hits. A brick
// whose hits run out is not removed in place: it is flung off the
// playfield, drifting up and to the left until it leaves the screen, and
// stops participating in collisions while airborne.
type Brick struct {
	Base
	Pos      geom.Vec2
	W, H     float64
	HitsLeft int
	Strength int // initial hit count, used for scoring
	Color    core.Color

	flung    bool
	flingVel geom.Vec2
}

// NewBrick creates a brick centered at (x, y) requiring hits to destroy.
func NewBrick(x, y, w, h float64, hits int, color core.Color) *Brick {
	return &Brick{
		Pos:      geom.Vec2{X: x, Y: y},
		W:        w,
		H:        h,
		HitsLeft: hits,
		Strength: hits,
		Color:    color,
	}
}

// Kind identifies the entity variant.
func (b *Brick) Kind() Kind { return KindBrick }

// Shape returns the brick's collision rectangle.
func (b *Brick) Shape() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// Bounds returns the shape used for collision tests.
func (b *Brick) Bounds() geom.Bounds { return b.Shape() }

// Flung reports whether the brick is tumbling off the playfield.
// Flung bricks are ignored by collision resolution.
func (b *Brick) Flung() bool { return b.flung }

// Fling launches the brick off the playfield, drifting up and to the left.
func (b *Brick) Fling() {
	if b.flung {
		return
	}
	b.flung = true
	b.flingVel = geom.Vec2{X: -1.2, Y: -0.4}
}

// Update drifts a flung brick and destroys it once fully past the left
// edge. Settled bricks do not move.
func (b *Brick) Update(World) {
	if !b.flung {
		return
	}
	b.Pos = b.Pos.Add(b.flingVel)
	if b.Shape().Right() < 0 {
		b.Destroy()
	}
}

// Died reports whether the brick has run out of hits.
func (b *Brick) Died(World) bool {
	return b.HitsLeft <= 0
}

// Draw renders the brick; hard bricks use a denser glyph until worn down,
// and flung bricks render as debris.
func (b *Brick) Draw(dst *core.Screen) {
	glyph := '█'
	if b.flung {
		glyph = '▒'
	} else if b.HitsLeft > 1 {
		glyph = '▓'
	}

	row := int(math.Round(b.Pos.Y))
	left := int(math.Round(b.Shape().Left()))
	right := int(math.Round(b.Shape().Right()))
	for x := left; x < right; x++ {
		dst.SetCell(x, row, glyph, b.Color)
	}
}
