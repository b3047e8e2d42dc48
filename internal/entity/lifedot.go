package entity

import (
	"math"

	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/geom"
)

// LifeDot is a passive HUD marker: one dot per remaining life, drawn in
// the top-right corner. The game destroys the rightmost dot when a life
// is lost.
type LifeDot struct {
	Base
	Pos    geom.Vec2
	Radius float64
}

// NewLifeDot creates a life marker at (x, y).
func NewLifeDot(x, y, radius float64) *LifeDot {
	return &LifeDot{
		Pos:    geom.Vec2{X: x, Y: y},
		Radius: radius,
	}
}

// Kind identifies the entity variant.
func (d *LifeDot) Kind() Kind { return KindLifeDot }

// Shape returns the marker's circle.
func (d *LifeDot) Shape() geom.Circle {
	return geom.Circle{X: d.Pos.X, Y: d.Pos.Y, R: d.Radius}
}

// Bounds returns the marker's shape. Life dots never collide; the shape
// exists so the store can treat all entities uniformly.
func (d *LifeDot) Bounds() geom.Bounds { return d.Shape() }

// Update does nothing: life markers are static.
func (d *LifeDot) Update(World) {}

// Died always reports false: markers are removed explicitly by the game.
func (d *LifeDot) Died(World) bool { return false }

// Draw renders the marker.
func (d *LifeDot) Draw(dst *core.Screen) {
	dst.SetCell(int(math.Round(d.Pos.X)), int(math.Round(d.Pos.Y)), '●', core.ColorBrightRed)
}
