package arkanoid

import (
	"testing"

	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/entity"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestClassicServeAndLaunch(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	snap := g.Snapshot()
	if snap.State != StateServe {
		t.Fatalf("state after Reset = %q, want %q", snap.State, StateServe)
	}
	if !snap.BallHeld {
		t.Error("ball should start held on the paddle")
	}

	g.Step(frameWith(core.ActionServe))

	snap = g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("state after serve = %q, want %q", snap.State, StatePlaying)
	}
	if snap.BallHeld {
		t.Error("ball still held after serve")
	}
	if snap.BallVY >= 0 {
		t.Errorf("BallVY after serve = %v, want upward (< 0)", snap.BallVY)
	}
}

func TestClassicPaddleMovement(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	before := g.Snapshot().PaddleX
	for i := 0; i < 5; i++ {
		g.Step(frameWith(core.ActionRight))
	}
	after := g.Snapshot().PaddleX

	if after <= before {
		t.Errorf("paddle x went %v -> %v, want increase", before, after)
	}

	for i := 0; i < 10; i++ {
		g.Step(frameWith(core.ActionLeft))
	}
	if got := g.Snapshot().PaddleX; got >= after {
		t.Errorf("paddle x = %v after moving left, want < %v", got, after)
	}
}

func TestClassicHeldBallFollowsPaddle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	for i := 0; i < 8; i++ {
		g.Step(frameWith(core.ActionRight))
	}

	snap := g.Snapshot()
	if !snap.BallHeld {
		t.Fatal("ball should still be held")
	}
	if snap.BallX != snap.PaddleX {
		t.Errorf("held ball x = %v, paddle x = %v, want equal", snap.BallX, snap.PaddleX)
	}
}

func TestClassicPauseResume(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameWith(core.ActionServe))

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	// Ticks while paused must not advance the simulation
	before := g.Snapshot()
	g.Step(emptyFrame())
	after := g.Snapshot()
	if before.BallX != after.BallX || before.BallY != after.BallY {
		t.Error("ball moved while paused")
	}

	g.Step(frameWith(core.ActionResume))
	if g.State().Paused {
		t.Error("game should have resumed")
	}
}

func TestClassicDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputs[i].Set(core.ActionServe)
		case i > 10 && i%5 < 3:
			inputs[i].Set(core.ActionRight)
		case i > 10:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ (%d vs %d)", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ (%d vs %d)", snap1.Score, snap2.Score)
	}
}

func TestClassicLifeLoss(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameWith(core.ActionServe))

	startLives := g.State().Lives
	dropBall(t, g)
	g.Step(emptyFrame())

	state := g.State()
	if state.Lives != startLives-1 {
		t.Errorf("lives = %d, want %d", state.Lives, startLives-1)
	}

	snap := g.Snapshot()
	if snap.State != StateNewLife {
		t.Errorf("state = %q, want %q", snap.State, StateNewLife)
	}
	if !snap.BallHeld {
		t.Error("ball should be back on the paddle after a drop")
	}

	// The freeze ends after one second of ticks and hands back to serve
	for i := 0; i < testRuntime().TickRate+1; i++ {
		g.Step(emptyFrame())
	}
	if got := g.Snapshot().State; got != StateServe {
		t.Errorf("state after freeze = %q, want %q", got, StateServe)
	}
}

func TestClassicLifeLossRetiresMarker(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameWith(core.ActionServe))

	before := len(g.store.LifeDots())
	dropBall(t, g)
	g.Step(emptyFrame())

	if after := len(g.store.LifeDots()); after != before-1 {
		t.Errorf("life markers = %d, want %d", after, before-1)
	}
}

func TestClassicGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.mu.Lock()
	g.lives = 1
	g.mu.Unlock()

	g.Step(frameWith(core.ActionServe))
	dropBall(t, g)
	g.Step(emptyFrame())

	state := g.State()
	if !state.GameOver {
		t.Fatal("game should be over with no lives left")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("state = %q, want %q", g.Snapshot().State, StateGameOver)
	}

	// Enter restarts
	g.Step(frameWith(core.ActionRestart))
	if g.State().GameOver {
		t.Error("restart should begin a fresh run")
	}
	if g.State().Lives != 3 {
		t.Errorf("lives after restart = %d, want 3", g.State().Lives)
	}
}

func TestClassicWinWhenBricksGone(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameWith(core.ActionServe))

	g.mu.Lock()
	for _, brick := range g.store.Bricks() {
		brick.Destroy()
	}
	g.mu.Unlock()

	g.Step(emptyFrame())
	if g.Snapshot().State != StateWin {
		t.Errorf("state = %q, want %q", g.Snapshot().State, StateWin)
	}

	// Classic runs without a stage timer
	if got := g.State().TimeLeft; got != -1 {
		t.Errorf("TimeLeft = %d, want -1", got)
	}
}

func TestScoringOnBrickKnockout(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameWith(core.ActionServe))

	// Park the ball inside a soft brick so this tick's collision pass
	// knocks it out.
	g.mu.Lock()
	var target *entity.Brick
	for _, brick := range g.store.Bricks() {
		if brick.HitsLeft == 1 {
			target = brick
			break
		}
	}
	if target == nil {
		g.mu.Unlock()
		t.Fatal("no soft brick in the default layout")
	}
	ball, err := g.store.Ball()
	if err != nil {
		g.mu.Unlock()
		t.Fatal(err)
	}
	ball.Pos = target.Pos
	ball.Vel.X = 0.1
	ball.Vel.Y = -0.1
	g.mu.Unlock()

	g.Step(emptyFrame())

	want := target.Strength * g.cfg.Gameplay.PointsPerStrength
	if got := g.State().Score; got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
	if !target.Flung() {
		t.Error("knocked-out brick should be flung")
	}
}

func TestCampaignStageAdvance(t *testing.T) {
	g := NewCampaign()
	g.Reset(testRuntime())
	t.Cleanup(g.Stop)

	g.Step(frameWith(core.ActionServe))

	g.mu.Lock()
	for _, brick := range g.store.Bricks() {
		brick.Destroy()
	}
	g.mu.Unlock()

	g.Step(emptyFrame())

	snap := g.Snapshot()
	if snap.State != StateStageClear {
		t.Fatalf("state = %q, want %q", snap.State, StateStageClear)
	}
	if snap.Stage != 2 {
		t.Errorf("stage = %d, want 2", snap.Stage)
	}

	// Ride out the transition freeze; the next stage is rebuilt with a
	// fresh brick wall and a held ball.
	for i := 0; i < 2*testRuntime().TickRate+1; i++ {
		g.Step(emptyFrame())
	}

	snap = g.Snapshot()
	if snap.State != StateServe {
		t.Errorf("state after transition = %q, want %q", snap.State, StateServe)
	}
	if len(snap.Bricks) == 0 {
		t.Error("next stage should have bricks")
	}
	if !snap.BallHeld {
		t.Error("ball should be held at the start of the next stage")
	}
}

func TestCampaignWinAfterLastStage(t *testing.T) {
	g := NewCampaign()
	g.Reset(testRuntime())
	t.Cleanup(g.Stop)

	g.mu.Lock()
	g.stage = g.cfg.Campaign.Stages
	g.mu.Unlock()

	g.Step(frameWith(core.ActionServe))
	g.mu.Lock()
	for _, brick := range g.store.Bricks() {
		brick.Destroy()
	}
	g.mu.Unlock()
	g.Step(emptyFrame())

	if g.Snapshot().State != StateWin {
		t.Errorf("state = %q, want %q", g.Snapshot().State, StateWin)
	}
}

func TestCampaignFireBullet(t *testing.T) {
	g := NewCampaign()
	g.Reset(testRuntime())
	t.Cleanup(g.Stop)

	g.Step(frameWith(core.ActionServe))

	g.Step(frameWith(core.ActionFire))
	if got := g.Snapshot().BulletCount; got != 1 {
		t.Fatalf("bullets after fire = %d, want 1", got)
	}

	// Cooldown blocks an immediate second shot
	g.Step(frameWith(core.ActionFire))
	if got := g.Snapshot().BulletCount; got != 1 {
		t.Errorf("bullets during cooldown = %d, want 1", got)
	}
}

func TestClassicHasNoBullets(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameWith(core.ActionServe))

	g.Step(frameWith(core.ActionFire))
	if got := g.Snapshot().BulletCount; got != 0 {
		t.Errorf("classic spawned %d bullets, want 0", got)
	}
}

func TestCampaignTimeLeftExposed(t *testing.T) {
	g := NewCampaign()
	g.Reset(testRuntime())
	t.Cleanup(g.Stop)

	if got := g.State().TimeLeft; got != g.cfg.Campaign.StageSeconds {
		t.Errorf("TimeLeft = %d, want %d", got, g.cfg.Campaign.StageSeconds)
	}
}

func TestCampaignStopIdempotent(t *testing.T) {
	g := NewCampaign()
	g.Reset(testRuntime())

	g.Stop()
	g.Stop()

	// Stepping a stopped campaign game must not hang even though the
	// update worker is gone.
	g.Step(frameWith(core.ActionServe))
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if got := []rune(dst.Row(1))[0]; got != '─' {
		t.Errorf("HUD separator row starts with %q, want '─'", got)
	}

	out := dst.String()
	if out == "" {
		t.Fatal("render produced empty screen")
	}
}

func TestPredictImpactX(t *testing.T) {
	w := entity.World{Width: 80, Height: 24, Top: 2}

	tests := []struct {
		name    string
		ball    *entity.Ball
		targetY float64
		want    float64
	}{
		{"straight diagonal", entity.NewBall(10, 10, 1, 1, 0.4), 20, 20},
		{"one wall bounce", entity.NewBall(70, 10, 2, 1, 0.4), 20, 70},
		{"moving up shadows ball", entity.NewBall(33, 10, 1, -1, 0.4), 20, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := predictImpactX(tt.ball, w, tt.targetY); got != tt.want {
				t.Errorf("predictImpactX() = %v, want %v", got, tt.want)
			}
		})
	}
}

// dropBall moves the ball below the playfield so the next Step registers
// a lost life.
func dropBall(t *testing.T, g *Game) {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()

	ball, err := g.store.Ball()
	if err != nil {
		t.Fatalf("no ball: %v", err)
	}
	ball.Pos.Y = g.world.Height + 2
	ball.Vel.Y = 0.1
}
