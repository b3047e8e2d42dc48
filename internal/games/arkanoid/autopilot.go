package arkanoid

import (
	"math"

	"github.com/arkterm/arkterm/internal/entity"
)

// predictImpactX returns the x at which the ball will cross targetY,
// folding reflections off the side walls into the straight-line travel.
// A ball moving upward has no defined impact; its current x is returned
// so the paddle shadows it.
func predictImpactX(ball *entity.Ball, w entity.World, targetY float64) float64 {
	if ball.Vel.Y <= 0 {
		return ball.Pos.X
	}

	t := (targetY - ball.Pos.Y) / ball.Vel.Y
	x := ball.Pos.X + ball.Vel.X*t

	// Unfold wall bounces: the trajectory is periodic over twice the
	// playfield width.
	period := 2 * w.Width
	x = math.Mod(x, period)
	if x < 0 {
		x += period
	}
	if x > w.Width {
		x = period - x
	}
	return x
}

// autoSteerLocked drives the paddle toward the predicted impact point.
// A held ball parks the paddle mid-field. Caller holds the mutex.
func (g *Game) autoSteerLocked(paddle *entity.Paddle) {
	ball, err := g.store.Ball()
	if err != nil {
		return
	}

	target := g.world.Width / 2
	if !ball.Held {
		target = predictImpactX(ball, g.world, paddle.Shape().Top())
	}

	// Deadzone avoids jitter around the target
	paddle.Dir = 0
	switch {
	case target < paddle.Pos.X-0.5:
		paddle.Dir = -1
	case target > paddle.Pos.X+0.5:
		paddle.Dir = 1
	}
}
