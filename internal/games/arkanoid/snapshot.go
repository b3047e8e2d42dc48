package arkanoid

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the observable simulation state for determinism
// checks and debugging. Primitive fields only.
type Snapshot struct {
	Tick  int
	State string
	Score int
	Lives int
	Stage int

	PaddleX float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallHeld       bool

	// One entry per brick in insertion order: remaining hits, negated
	// for bricks currently being flung off the field.
	Bricks []int

	BulletCount int
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Tick:  g.tickCount,
		State: g.state,
		Score: g.score,
		Lives: g.lives,
		Stage: g.stage,
	}

	if paddle, err := g.store.Paddle(); err == nil {
		snap.PaddleX = paddle.Pos.X
	}
	if ball, err := g.store.Ball(); err == nil {
		snap.BallX = ball.Pos.X
		snap.BallY = ball.Pos.Y
		snap.BallVX = ball.Vel.X
		snap.BallVY = ball.Vel.Y
		snap.BallHeld = ball.Held
	}

	for _, brick := range g.store.Bricks() {
		hits := brick.HitsLeft
		if brick.Flung() {
			hits = -hits
		}
		snap.Bricks = append(snap.Bricks, hits)
	}
	snap.BulletCount = len(g.store.Bullets())

	return snap
}

// Hash returns a stable digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%d|%d|%d|%.4f|%.4f|%.4f|%.4f|%.4f|%v|%v|%d",
		s.Tick, s.State, s.Score, s.Lives, s.Stage,
		s.PaddleX, s.BallX, s.BallY, s.BallVX, s.BallVY,
		s.BallHeld, s.Bricks, s.BulletCount)
	return h.Sum64()
}
