// Package arkanoid implements the arkanoid game in two variants: classic
// (single stage, no timer) and campaign (multiple stages, countdown,
// paddle gun, optional autopilot and background simulation workers).
package arkanoid

import (
	"fmt"
	"sync"

	"github.com/arkterm/arkterm/internal/collision"
	"github.com/arkterm/arkterm/internal/config"
	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/entity"
	"github.com/arkterm/arkterm/internal/registry"
)

// Game state constants
const (
	StateServe      = "serve"      // Ball on paddle, waiting for launch
	StatePlaying    = "playing"    // Ball in play
	StatePaused     = "paused"     // Game paused
	StateNewLife    = "newlife"    // Brief freeze after losing a life
	StateStageClear = "stageclear" // Brief freeze between campaign stages
	StateGameOver   = "gameover"   // No lives left or time expired
	StateWin        = "win"        // All stages cleared
)

// Mode selects the game variant.
type Mode int

const (
	ModeClassic Mode = iota
	ModeCampaign
)

// Sounds receives every gameplay audio cue. Implemented by audio.Player;
// a nil Sounds disables audio entirely.
type Sounds interface {
	WallBounce()
	BrickHit()
	LifeLost()
	StageClear()
	GameOver()
}

// Package-level knobs set via CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	sounds           Sounds
	autopilotOn      bool
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// SetSounds installs the audio sink used by new games.
func SetSounds(s Sounds) {
	sounds = s
}

// SetAutopilot lets the computer play the paddle.
func SetAutopilot(on bool) {
	autopilotOn = on
}

// Game implements the arkanoid logic for both variants.
//
// The mutex guards all mutable state: in campaign mode the engine's
// workers (update, countdown, autopilot) touch the store and paddle
// concurrently with Step and Render.
type Game struct {
	mode Mode

	mu sync.Mutex

	store *entity.Store
	world entity.World

	state        string
	score        int
	lives        int
	stage        int
	tickCount    int
	delayTicks   int // Remaining freeze ticks in newlife/stageclear
	fireCooldown int
	serveDir     float64 // Horizontal direction of the next serve

	runtime   core.RuntimeConfig
	cfg       config.ArkanoidConfig
	sounds    Sounds
	autopilot bool

	engine *engine // Campaign only, nil in classic
}

// New creates a classic game instance.
func New() *Game {
	return &Game{mode: ModeClassic, serveDir: 1}
}

// NewCampaign creates a campaign game instance.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign, serveDir: 1}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return "campaign"
	}
	return "classic"
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "Arkanoid (Campaign)"
	}
	return "Arkanoid"
}

// Reset initializes or restarts the game. Any running engine workers from
// the previous run are joined before the new state is built.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	// Join old workers first; they take the mutex themselves.
	if old := g.swapEngine(nil); old != nil {
		old.stop()
	}

	g.mu.Lock()
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultArkanoidConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.sounds = sounds
	g.autopilot = autopilotOn

	g.world = entity.World{
		Width:  float64(runtime.ScreenW),
		Height: float64(runtime.ScreenH),
		Top:    2, // HUD takes the top two rows
	}

	g.store = entity.NewStore()
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.stage = 1
	g.tickCount = 0
	g.delayTicks = 0
	g.fireCooldown = 0

	g.buildStage(g.stage)
	g.state = StateServe
	g.mu.Unlock()

	if g.mode == ModeCampaign {
		eng := newEngine(g)
		g.swapEngine(eng)
		eng.start(cfg.Campaign.StageSeconds, g.autopilot)
	}
}

// swapEngine exchanges the engine pointer under the lock and returns the
// previous one.
func (g *Game) swapEngine(next *engine) *engine {
	g.mu.Lock()
	defer g.mu.Unlock()
	prev := g.engine
	g.engine = next
	return prev
}

// Stop joins all background workers. Safe to call on a classic game or
// more than once.
func (g *Game) Stop() {
	if old := g.swapEngine(nil); old != nil {
		old.stop()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()

	// Restart from a terminal state
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		runtime := g.runtime
		g.mu.Unlock()
		g.Reset(runtime)
		return core.StepResult{State: g.State()}
	}

	// Pause toggle
	if in.Has(core.ActionPause) && g.state == StatePlaying {
		g.state = StatePaused
	} else if g.state == StatePaused && (in.Has(core.ActionResume) || in.Has(core.ActionPause)) {
		g.state = StatePlaying
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return g.unlockResult()
	}

	g.tickCount++

	// Freeze states count down, then hand back to serve
	if g.state == StateNewLife || g.state == StateStageClear {
		g.delayTicks--
		if g.delayTicks <= 0 {
			if g.state == StateStageClear {
				g.buildStage(g.stage)
			}
			g.state = StateServe
		}
		return g.unlockResult()
	}

	// Campaign countdown ran out
	if eng := g.engine; eng != nil && g.cfg.Campaign.StageSeconds > 0 && eng.timeRemaining() <= 0 {
		g.state = StateGameOver
		g.playGameOver()
		return g.unlockResult()
	}

	g.steerPaddleLocked(in)
	g.handleServeLocked(in)
	g.handleFireLocked(in)

	eng := g.engine
	g.mu.Unlock()

	// Entity update pass: handed to the update worker in campaign mode,
	// run inline in classic mode.
	if eng != nil {
		eng.stepUpdate()
	} else {
		g.mu.Lock()
		g.store.Update(g.world)
		g.mu.Unlock()
	}

	g.mu.Lock()
	g.seatHeldBallLocked()
	g.resolveCollisionsLocked()
	g.handleBallDropLocked()
	g.checkStageClearLocked()
	g.store.Refresh()
	return g.unlockResult()
}

// unlockResult builds the step result and releases the mutex.
func (g *Game) unlockResult() core.StepResult {
	res := core.StepResult{State: g.stateLocked()}
	g.mu.Unlock()
	return res
}

// steerPaddleLocked sets the paddle direction from input, or from the
// intercept prediction when the classic variant runs on autopilot.
// Campaign autopilot is steered by its own worker.
func (g *Game) steerPaddleLocked(in core.InputFrame) {
	paddle, err := g.store.Paddle()
	if err != nil {
		return
	}

	if g.autopilot {
		if g.engine == nil {
			g.autoSteerLocked(paddle)
		}
		return
	}

	paddle.Dir = 0
	if in.Has(core.ActionLeft) {
		paddle.Dir = -1
	}
	if in.Has(core.ActionRight) {
		paddle.Dir = 1
	}
}

// handleServeLocked releases a held ball on serve input. Autopilot serves
// by itself.
func (g *Game) handleServeLocked(in core.InputFrame) {
	if g.state != StateServe {
		return
	}
	if !in.Has(core.ActionServe) && !g.autopilot {
		return
	}

	ball, err := g.store.Ball()
	if err != nil {
		return
	}
	speed := g.ballSpeed()
	ball.Held = false
	ball.SetExternal(false)
	ball.Vel.X = speed * g.serveDir
	ball.Vel.Y = -speed
	g.serveDir = -g.serveDir
	g.state = StatePlaying
}

// handleFireLocked spawns a bullet from the paddle. Campaign only.
func (g *Game) handleFireLocked(in core.InputFrame) {
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	if g.mode != ModeCampaign || g.state != StatePlaying {
		return
	}
	if !in.Has(core.ActionFire) || g.fireCooldown > 0 {
		return
	}
	paddle, err := g.store.Paddle()
	if err != nil {
		return
	}

	b := entity.NewBullet(paddle.Pos.X, paddle.Shape().Top()-1, g.cfg.Bullets.Speed, g.cfg.Bullets.Radius)
	b.SetStage(g.stage)
	g.store.Add(b)
	g.fireCooldown = g.cfg.Bullets.Cooldown
}

// seatHeldBallLocked keeps a held ball riding the paddle center.
func (g *Game) seatHeldBallLocked() {
	ball, err := g.store.Ball()
	if err != nil || !ball.Held {
		return
	}
	paddle, err := g.store.Paddle()
	if err != nil {
		return
	}
	ball.Pos.X = paddle.Pos.X
	ball.Pos.Y = paddle.Shape().Top() - ball.Radius - 0.5
}

// resolveCollisionsLocked runs the ball/paddle, ball/brick, and
// bullet/brick passes and applies scoring.
func (g *Game) resolveCollisionsLocked() {
	ball, ballErr := g.store.Ball()

	if ballErr == nil && !ball.Held {
		if paddle, err := g.store.Paddle(); err == nil {
			if collision.SolvePaddleBall(paddle, ball) && g.sounds != nil {
				g.sounds.WallBounce()
			}
		}

		for _, brick := range g.store.Bricks() {
			if collision.SolveBallBrick(ball, brick) {
				g.scoreBrickHitLocked(brick)
			}
		}
	}

	for _, bullet := range g.store.Bullets() {
		for _, brick := range g.store.Bricks() {
			if collision.SolveBrickBullet(brick, bullet) {
				g.scoreBrickHitLocked(brick)
				break
			}
		}
		if bullet.Died(g.world) {
			bullet.Destroy()
		}
	}
}

// scoreBrickHitLocked plays the hit cue and awards points when the brick
// is knocked out.
func (g *Game) scoreBrickHitLocked(brick *entity.Brick) {
	if g.sounds != nil {
		g.sounds.BrickHit()
	}
	if brick.HitsLeft <= 0 {
		g.score += brick.Strength * g.cfg.Gameplay.PointsPerStrength
	}
}

// handleBallDropLocked processes a ball falling off the playfield.
func (g *Game) handleBallDropLocked() {
	ball, err := g.store.Ball()
	if err != nil || ball.Held || !ball.Died(g.world) {
		return
	}

	g.lives--
	if g.sounds != nil {
		g.sounds.LifeLost()
	}

	// Retire the rightmost life marker
	if dots := g.store.LifeDots(); len(dots) > 0 {
		dots[len(dots)-1].Destroy()
	}

	if g.lives <= 0 {
		g.state = StateGameOver
		g.playGameOver()
		return
	}

	// Put the same ball back on the paddle
	ball.Held = true
	ball.SetExternal(true)
	ball.Vel.X = 0
	ball.Vel.Y = 0
	g.seatHeldBallLocked()
	g.state = StateNewLife
	g.delayTicks = g.runtime.TickRate // 1 second freeze
}

// checkStageClearLocked advances the campaign or ends the classic game
// once the last brick is gone.
func (g *Game) checkStageClearLocked() {
	if g.state != StatePlaying || g.store.AliveBricks() > 0 {
		return
	}

	if g.mode == ModeClassic {
		g.state = StateWin
		if g.sounds != nil {
			g.sounds.StageClear()
		}
		return
	}

	if g.stage >= g.cfg.Campaign.Stages {
		g.state = StateWin
		if g.sounds != nil {
			g.sounds.StageClear()
		}
		return
	}

	g.stage++
	g.state = StateStageClear
	g.delayTicks = 2 * g.runtime.TickRate
	if g.sounds != nil {
		g.sounds.StageClear()
	}
}

func (g *Game) playGameOver() {
	if g.sounds != nil {
		g.sounds.GameOver()
	}
}

// ballSpeed returns the per-axis ball speed for the current stage.
func (g *Game) ballSpeed() float64 {
	speed := g.cfg.Ball.Speed
	if g.mode == ModeCampaign {
		speed += float64(g.stage-1) * g.cfg.Campaign.SpeedBonus
	}
	return speed
}

// stateLocked builds the externally visible game state.
func (g *Game) stateLocked() core.GameState {
	timeLeft := -1
	if eng := g.engine; eng != nil && g.cfg.Campaign.StageSeconds > 0 {
		timeLeft = eng.timeRemaining()
	}
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Stage:    g.stage,
		TimeLeft: timeLeft,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dst.Clear()
	g.renderHUDLocked(dst)
	g.store.Draw(dst)
	g.renderOverlayLocked(dst)
}

// renderHUDLocked draws score, stage, and timer on the top rows.
func (g *Game) renderHUDLocked(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	if g.mode == ModeCampaign {
		stageText := fmt.Sprintf("Stage: %d/%d", g.stage, g.cfg.Campaign.Stages)
		dst.DrawTextCentered(0, stageText)

		if eng := g.engine; eng != nil && g.cfg.Campaign.StageSeconds > 0 {
			timeText := fmt.Sprintf("Time: %ds", eng.timeRemaining())
			// Leave room for the life markers in the corner
			dst.DrawText(dst.Width()-len(timeText)-2*g.lives-4, 0, timeText)
		}
	} else {
		dst.DrawTextCentered(0, "Arkanoid")
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlayLocked draws state-dependent messages.
func (g *Game) renderOverlayLocked(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if !g.autopilot {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}
	case StateNewLife:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("%d lives left", g.lives))
	case StateStageClear:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Stage %d cleared!", g.stage-1))
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press R to resume")
	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press ENTER to restart", g.score))
	case StateWin:
		g.drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press ENTER to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(subtitle)
	if len(title) > boxW {
		boxW = len(title)
	}
	boxW += 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillBox(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the variants with the registry
func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("campaign", func() registry.Game {
		return NewCampaign()
	})
}
