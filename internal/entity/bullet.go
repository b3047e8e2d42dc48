package entity

import (
	"math"

	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/geom"
)

// Bullet is a projectile fired upward from the paddle. It dies when it
// strikes a brick or leaves the top of the screen.
type Bullet struct {
	Base
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Struck bool
}

// NewBullet creates a bullet at (x, y) travelling straight up at speed.
func NewBullet(x, y, speed, radius float64) *Bullet {
	return &Bullet{
		Pos:    geom.Vec2{X: x, Y: y},
		Vel:    geom.Vec2{X: 0, Y: -speed},
		Radius: radius,
	}
}

// Kind identifies the entity variant.
func (b *Bullet) Kind() Kind { return KindBullet }

// Shape returns the bullet's collision circle.
func (b *Bullet) Shape() geom.Circle {
	return geom.Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
}

// Bounds returns the shape used for collision tests.
func (b *Bullet) Bounds() geom.Bounds { return b.Shape() }

// Update moves the bullet along its velocity.
func (b *Bullet) Update(World) {
	b.Pos = b.Pos.Add(b.Vel)
}

// Died reports whether the bullet struck a brick or left the screen.
func (b *Bullet) Died(w World) bool {
	return b.Struck || b.Shape().Bottom() < w.Top
}

// Draw renders the bullet.
func (b *Bullet) Draw(dst *core.Screen) {
	dst.SetCell(int(math.Round(b.Pos.X)), int(math.Round(b.Pos.Y)), '•', core.ColorRed)
}
