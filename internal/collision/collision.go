// Package collision implements intersection tests and resolution for the
// game's entity pairs. Detection is a closed-interval AABB test over the
// uniform edge queries, so a ball exactly touching a brick edge counts as
// a hit. Resolution picks the axis of least penetration and reflects the
// ball's velocity on that axis only.
package collision

import (
	"github.com/arkterm/arkterm/internal/entity"
	"github.com/arkterm/arkterm/internal/geom"
)

// Intersecting reports whether two shapes overlap or touch. Both edge
// comparisons are inclusive: tangent contact resolves as a collision.
func Intersecting(a, b geom.Bounds) bool {
	return a.Right() >= b.Left() && a.Left() <= b.Right() &&
		a.Bottom() >= b.Top() && a.Top() <= b.Bottom()
}

// SolvePaddleBall bounces the ball off the paddle. The ball always leaves
// upward; its horizontal direction is steered by which half of the paddle
// it struck. Returns true when a bounce happened.
func SolvePaddleBall(p *entity.Paddle, b *entity.Ball) bool {
	if !Intersecting(p.Shape(), b.Shape()) {
		return false
	}
	b.Vel.Y = -geom.Abs(b.Vel.Y)
	if b.Pos.X < p.Pos.X {
		b.Vel.X = -geom.Abs(b.Vel.X)
	} else {
		b.Vel.X = geom.Abs(b.Vel.X)
	}
	return true
}

// SolveBallBrick resolves a ball hitting a brick: the brick loses one hit
// (and is flung off the playfield when its hits run out), and the ball
// reflects off the shallower penetration axis. Flung bricks are transparent
// to the ball. Returns true when a hit happened.
func SolveBallBrick(b *entity.Ball, br *entity.Brick) bool {
	if br.Flung() || !Intersecting(b.Shape(), br.Shape()) {
		return false
	}

	br.HitsLeft--
	if br.HitsLeft <= 0 {
		br.Fling()
	}

	ball, brick := b.Shape(), br.Shape()

	// Penetration depth measured from each brick edge. The shallower side
	// on each axis tells which direction the ball came from; the shallower
	// axis overall is the one the ball actually crossed.
	overlapLeft := ball.Right() - brick.Left()
	overlapRight := brick.Right() - ball.Left()
	overlapTop := ball.Bottom() - brick.Top()
	overlapBottom := brick.Bottom() - ball.Top()

	fromLeft := geom.Abs(overlapLeft) < geom.Abs(overlapRight)
	fromTop := geom.Abs(overlapTop) < geom.Abs(overlapBottom)

	minOverlapX := overlapRight
	if fromLeft {
		minOverlapX = overlapLeft
	}
	minOverlapY := overlapBottom
	if fromTop {
		minOverlapY = overlapTop
	}

	// Reflect exactly one velocity component. Ties go to the vertical
	// axis, the common case for a ball arriving from below or above.
	if geom.Abs(minOverlapX) < geom.Abs(minOverlapY) {
		b.Vel.X = -b.Vel.X
	} else {
		b.Vel.Y = -b.Vel.Y
	}
	return true
}

// SolveBrickBullet resolves a bullet striking a brick: the brick loses one
// hit (flung when out of hits) and the bullet is consumed. Flung bricks
// are transparent to bullets. Returns true when a strike happened.
func SolveBrickBullet(br *entity.Brick, bl *entity.Bullet) bool {
	if br.Flung() || bl.Struck || !Intersecting(br.Shape(), bl.Shape()) {
		return false
	}
	br.HitsLeft--
	if br.HitsLeft <= 0 {
		br.Fling()
	}
	bl.Struck = true
	bl.Destroy()
	return true
}
