// Package geom provides the shape descriptors used for collision detection.
// Shapes are center-based: a rectangle is its center plus width/height, a
// circle its center plus radius. Both expose the same edge queries so
// collision code never cares which shape it is looking at.
package geom

import "math"

// Vec2 is a 2D vector in world units (terminal cells, fractional).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Bounds is the uniform edge-query contract shared by all shapes.
// Edges are derived from the center and extent; implementations have no
// side effects.
type Bounds interface {
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
}

// Rect is an axis-aligned rectangle identified by its center and size.
type Rect struct {
	X, Y float64 // Center position
	W, H float64 // Full width and height
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X - r.W/2 }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W/2 }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y - r.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H/2 }

// Circle is a circle identified by its center and radius.
type Circle struct {
	X, Y float64 // Center position
	R    float64 // Radius
}

// Left returns the x-coordinate of the leftmost point.
func (c Circle) Left() float64 { return c.X - c.R }

// Right returns the x-coordinate of the rightmost point.
func (c Circle) Right() float64 { return c.X + c.R }

// Top returns the y-coordinate of the topmost point.
func (c Circle) Top() float64 { return c.Y - c.R }

// Bottom returns the y-coordinate of the bottommost point.
func (c Circle) Bottom() float64 { return c.Y + c.R }

// Clamp restricts a value to [min, max].
func Clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	return math.Abs(x)
}
