package collision

import (
	"testing"

	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/entity"
	"github.com/arkterm/arkterm/internal/geom"
)

func TestIntersecting(t *testing.T) {
	brick := geom.Rect{X: 100, Y: 100, W: 60, H: 20}

	tests := []struct {
		name string
		ball geom.Circle
		want bool
	}{
		{"deep overlap", geom.Circle{X: 95, Y: 100, R: 5}, true},
		{"tangent contact counts", geom.Circle{X: 100, Y: 85, R: 5}, true},
		{"clear above", geom.Circle{X: 100, Y: 80, R: 5}, false},
		{"clear left", geom.Circle{X: 60, Y: 100, R: 5}, false},
		{"corner touch", geom.Circle{X: 65, Y: 85, R: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersecting(tt.ball, brick); got != tt.want {
				t.Errorf("Intersecting(%+v, brick) = %v, want %v", tt.ball, got, tt.want)
			}
		})
	}
}

func TestSolveBallBrickVerticalReflection(t *testing.T) {
	// Ball embedded in the brick's left half, arriving diagonally: the
	// vertical penetration (15) is shallower than the horizontal (30),
	// so only the y velocity reflects.
	brick := entity.NewBrick(100, 100, 60, 20, 1, core.ColorYellow)
	ball := entity.NewBall(95, 100, 2, 2, 5)

	if !SolveBallBrick(ball, brick) {
		t.Fatal("expected a hit")
	}
	if ball.Vel.Y != -2 {
		t.Errorf("Vel.Y = %v, want -2", ball.Vel.Y)
	}
	if ball.Vel.X != 2 {
		t.Errorf("Vel.X = %v, want 2 (unchanged)", ball.Vel.X)
	}
}

func TestSolveBallBrickHorizontalReflection(t *testing.T) {
	// Ball just inside the brick's left edge at mid-height: horizontal
	// penetration is shallower, so only the x velocity reflects.
	brick := entity.NewBrick(100, 100, 60, 20, 1, core.ColorYellow)
	ball := entity.NewBall(68, 100, 2, 0.5, 3)

	if !SolveBallBrick(ball, brick) {
		t.Fatal("expected a hit")
	}
	if ball.Vel.X != -2 {
		t.Errorf("Vel.X = %v, want -2", ball.Vel.X)
	}
	if ball.Vel.Y != 0.5 {
		t.Errorf("Vel.Y = %v, want 0.5 (unchanged)", ball.Vel.Y)
	}
}

func TestSolveBallBrickDecrementsAndFlings(t *testing.T) {
	brick := entity.NewBrick(100, 100, 60, 20, 3, core.ColorYellow)
	ball := entity.NewBall(95, 100, 2, 2, 5)

	SolveBallBrick(ball, brick)
	if brick.HitsLeft != 2 {
		t.Errorf("HitsLeft = %d, want 2", brick.HitsLeft)
	}
	if brick.Flung() {
		t.Error("brick flung with hits remaining")
	}

	brick.HitsLeft = 1
	SolveBallBrick(ball, brick)
	if !brick.Flung() {
		t.Error("brick not flung after last hit")
	}
	if brick.Destroyed() {
		t.Error("flung brick destroyed immediately; it should drift off first")
	}
}

func TestSolveBallBrickIgnoresFlung(t *testing.T) {
	brick := entity.NewBrick(100, 100, 60, 20, 1, core.ColorYellow)
	brick.HitsLeft = 0
	brick.Fling()
	ball := entity.NewBall(95, 100, 2, 2, 5)

	if SolveBallBrick(ball, brick) {
		t.Error("flung brick should be transparent to the ball")
	}
	if ball.Vel.X != 2 || ball.Vel.Y != 2 {
		t.Errorf("velocity changed to (%v,%v), want (2,2)", ball.Vel.X, ball.Vel.Y)
	}
}

func TestSolveBallBrickMiss(t *testing.T) {
	brick := entity.NewBrick(100, 100, 60, 20, 1, core.ColorYellow)
	ball := entity.NewBall(10, 10, 2, 2, 5)

	if SolveBallBrick(ball, brick) {
		t.Error("non-intersecting pair reported a hit")
	}
	if brick.HitsLeft != 1 {
		t.Errorf("HitsLeft = %d, want 1 (untouched)", brick.HitsLeft)
	}
}

func TestSolvePaddleBall(t *testing.T) {
	paddle := entity.NewPaddle(40, 22, 10, 1, 1)

	// Left half: ball leaves up and to the left.
	ball := entity.NewBall(37, 22, 1, 1, 0.5)
	if !SolvePaddleBall(paddle, ball) {
		t.Fatal("expected a bounce")
	}
	if ball.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v, want < 0", ball.Vel.Y)
	}
	if ball.Vel.X >= 0 {
		t.Errorf("left-half bounce: Vel.X = %v, want < 0", ball.Vel.X)
	}

	// Right half: ball leaves up and to the right even if it arrived
	// moving left.
	ball = entity.NewBall(43, 22, -1, 1, 0.5)
	if !SolvePaddleBall(paddle, ball) {
		t.Fatal("expected a bounce")
	}
	if ball.Vel.X <= 0 {
		t.Errorf("right-half bounce: Vel.X = %v, want > 0", ball.Vel.X)
	}

	// Miss.
	ball = entity.NewBall(10, 5, 1, 1, 0.5)
	if SolvePaddleBall(paddle, ball) {
		t.Error("non-intersecting pair reported a bounce")
	}
}

func TestSolveBrickBullet(t *testing.T) {
	brick := entity.NewBrick(100, 100, 60, 20, 1, core.ColorYellow)
	bullet := entity.NewBullet(100, 105, 1, 2)

	if !SolveBrickBullet(brick, bullet) {
		t.Fatal("expected a strike")
	}
	if !brick.Flung() {
		t.Error("one-hit brick not flung by bullet")
	}
	if !bullet.Struck || !bullet.Destroyed() {
		t.Error("bullet not consumed by the strike")
	}

	// A consumed bullet cannot strike again.
	other := entity.NewBrick(100, 100, 60, 20, 2, core.ColorYellow)
	if SolveBrickBullet(other, bullet) {
		t.Error("consumed bullet struck a second brick")
	}
}
