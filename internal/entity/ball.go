package entity

import (
	"math"

	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/geom"
)

// Ball is the bouncing ball. While Held it rides the paddle and does not
// move on its own; the game re-seats it over the paddle each tick and
// releases it on serve.
type Ball struct {
	Base
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Held   bool

	Sound Sounder
}

// NewBall creates a ball at (x, y) with the given velocity and radius.
func NewBall(x, y, vx, vy, radius float64) *Ball {
	return &Ball{
		Pos:    geom.Vec2{X: x, Y: y},
		Vel:    geom.Vec2{X: vx, Y: vy},
		Radius: radius,
	}
}

// Kind identifies the entity variant.
func (b *Ball) Kind() Kind { return KindBall }

// Shape returns the ball's collision circle.
func (b *Ball) Shape() geom.Circle {
	return geom.Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
}

// Bounds returns the shape used for collision tests.
func (b *Ball) Bounds() geom.Bounds { return b.Shape() }

// Update moves the ball and reflects it off the side and top walls.
// A held ball stays put. There is no bottom wall: a ball past the bottom
// edge is reported by Died and handled by the game as a lost life.
func (b *Ball) Update(w World) {
	if b.Held {
		return
	}

	b.Pos = b.Pos.Add(b.Vel)

	c := b.Shape()
	switch {
	case c.Left() < 0:
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
		b.bounced()
	case c.Right() > w.Width:
		b.Pos.X = w.Width - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
		b.bounced()
	}
	if b.Shape().Top() < w.Top {
		b.Pos.Y = w.Top + b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
		b.bounced()
	}
}

func (b *Ball) bounced() {
	if b.Sound != nil {
		b.Sound.WallBounce()
	}
}

// Died reports whether the ball fell below the playfield.
func (b *Ball) Died(w World) bool {
	return b.Shape().Bottom() > w.Height
}

// Draw renders the ball.
func (b *Ball) Draw(dst *core.Screen) {
	dst.SetCell(int(math.Round(b.Pos.X)), int(math.Round(b.Pos.Y)), '●', core.ColorGreen)
}
