package arkanoid

import (
	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/entity"
)

// Brick row colors, cycling from the top row down.
var brickRowColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
}

// buildStage clears the store and populates it for the given stage:
// paddle, held ball, life markers, and the brick wall. Campaign stages
// past the first reinforce extra rows and restart the countdown.
// Caller holds the mutex.
func (g *Game) buildStage(stage int) {
	g.store.Clear()
	cfg := g.cfg
	w := g.world

	paddle := entity.NewPaddle(w.Width/2, w.Height-2, cfg.Paddle.Width, cfg.Paddle.Height, cfg.Paddle.Speed)
	paddle.SetStage(stage)
	g.store.Add(paddle)

	ball := entity.NewBall(paddle.Pos.X, paddle.Shape().Top()-cfg.Ball.Radius-0.5, 0, 0, cfg.Ball.Radius)
	ball.Held = true
	ball.SetExternal(true) // Seated on the paddle until served
	if g.sounds != nil {
		ball.Sound = g.sounds
	}
	ball.SetStage(stage)
	g.store.Add(ball)

	// Life markers in the top-right corner, leftmost first so the last
	// one added is the rightmost and retires first.
	for i := 0; i < g.lives; i++ {
		dot := entity.NewLifeDot(w.Width-2*float64(g.lives-i), 0, 0.4)
		dot.SetStage(stage)
		g.store.Add(dot)
	}

	g.buildBrickWall(stage)

	if eng := g.engine; eng != nil {
		eng.setTimeLeft(cfg.Campaign.StageSeconds)
	}
}

// buildBrickWall lays out the brick grid centered below the HUD.
// Every hard_every_n-th column is reinforced; in the campaign, later
// stages additionally reinforce rows from the top down.
func (g *Game) buildBrickWall(stage int) {
	cfg := g.cfg.Bricks
	w := g.world

	extraHardRows := 0
	if g.mode == ModeCampaign {
		extraHardRows = (stage - 1) * g.cfg.Campaign.ExtraHardRows
	}

	gridW := float64(cfg.Columns)*(cfg.Width+1) - 1
	startX := (w.Width-gridW)/2 + cfg.Width/2
	startY := w.Top + 2

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			hits := 1
			if cfg.HardEveryN > 0 && col%cfg.HardEveryN == 0 {
				hits = cfg.HardHits
			}
			if row < extraHardRows {
				hits = cfg.HardHits
			}

			x := startX + float64(col)*(cfg.Width+1)
			y := startY + float64(row)*cfg.Height

			brick := entity.NewBrick(x, y, cfg.Width, cfg.Height, hits, brickRowColors[row%len(brickRowColors)])
			brick.SetStage(stage)
			g.store.Add(brick)
		}
	}
}
