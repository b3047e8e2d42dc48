package entity

import (
	"math"

	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/geom"
)

// Paddle is the player (or autopilot) controlled bat at the bottom of the
// playfield. Dir is set each tick from input: -1 left, +1 right, 0 idle.
type Paddle struct {
	Base
	Pos   geom.Vec2
	W, H  float64
	Speed float64
	Dir   int
}

// NewPaddle creates a paddle centered at (x, y).
func NewPaddle(x, y, w, h, speed float64) *Paddle {
	return &Paddle{
		Pos:   geom.Vec2{X: x, Y: y},
		W:     w,
		H:     h,
		Speed: speed,
	}
}

// Kind identifies the entity variant.
func (p *Paddle) Kind() Kind { return KindPaddle }

// Shape returns the paddle's collision rectangle.
func (p *Paddle) Shape() geom.Rect {
	return geom.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// Bounds returns the shape used for collision tests.
func (p *Paddle) Bounds() geom.Bounds { return p.Shape() }

// Update moves the paddle by its current direction, clamped so it never
// leaves the playfield.
func (p *Paddle) Update(w World) {
	p.Pos.X += float64(p.Dir) * p.Speed
	p.Pos.X = geom.Clamp(p.Pos.X, p.W/2, w.Width-p.W/2)
}

// Died always reports false: the paddle has no end condition.
func (p *Paddle) Died(World) bool { return false }

// Draw renders the paddle as a bar of '=' cells.
func (p *Paddle) Draw(dst *core.Screen) {
	row := int(math.Round(p.Pos.Y))
	left := int(math.Round(p.Shape().Left()))
	right := int(math.Round(p.Shape().Right()))
	for x := left; x < right; x++ {
		dst.SetCell(x, row, '=', core.ColorCyan)
	}
}
