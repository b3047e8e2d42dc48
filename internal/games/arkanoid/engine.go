package arkanoid

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// engine runs the campaign's background workers:
//
//   - update: performs the entity update pass when Step signals for it,
//     so simulation cost is off the input/render goroutine
//   - countdown: decrements the stage timer once per wall-clock second
//     while the game is in play
//   - autopilot: steers the paddle toward the predicted ball impact
//
// All workers honor context cancellation; stop joins every one of them.
type engine struct {
	g      *Game
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	updateReq  chan struct{}
	updateDone chan struct{}

	timeLeft atomic.Int64
}

func newEngine(g *Game) *engine {
	ctx, cancel := context.WithCancel(context.Background())
	return &engine{
		g:          g,
		ctx:        ctx,
		cancel:     cancel,
		updateReq:  make(chan struct{}),
		updateDone: make(chan struct{}),
	}
}

// start launches the workers. The countdown worker only runs when the
// stage timer is enabled, the autopilot worker only when requested.
func (e *engine) start(stageSeconds int, autopilot bool) {
	e.wg.Add(1)
	go e.updateLoop()

	if stageSeconds > 0 {
		e.timeLeft.Store(int64(stageSeconds))
		e.wg.Add(1)
		go e.countdownLoop()
	}
	if autopilot {
		e.wg.Add(1)
		go e.autopilotLoop()
	}
}

// stop cancels the workers and waits for them to exit.
func (e *engine) stop() {
	e.cancel()
	e.wg.Wait()
}

// stepUpdate hands one entity update pass to the update worker and waits
// for it to finish. Returns immediately once the engine is stopped.
func (e *engine) stepUpdate() {
	select {
	case e.updateReq <- struct{}{}:
	case <-e.ctx.Done():
		return
	}
	select {
	case <-e.updateDone:
	case <-e.ctx.Done():
	}
}

// setTimeLeft resets the stage countdown.
func (e *engine) setTimeLeft(seconds int) {
	e.timeLeft.Store(int64(seconds))
}

// timeRemaining returns the seconds left on the stage countdown.
func (e *engine) timeRemaining() int {
	return int(e.timeLeft.Load())
}

func (e *engine) updateLoop() {
	defer e.wg.Done()
	for {
		select {
		case <-e.ctx.Done():
			return
		case <-e.updateReq:
			e.g.mu.Lock()
			e.g.store.Update(e.g.world)
			e.g.mu.Unlock()

			select {
			case e.updateDone <- struct{}{}:
			case <-e.ctx.Done():
				return
			}
		}
	}
}

func (e *engine) countdownLoop() {
	defer e.wg.Done()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			e.g.mu.Lock()
			inPlay := e.g.state == StatePlaying
			e.g.mu.Unlock()

			if inPlay && e.timeLeft.Load() > 0 {
				e.timeLeft.Add(-1)
			}
		}
	}
}

func (e *engine) autopilotLoop() {
	defer e.wg.Done()
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			e.g.mu.Lock()
			if e.g.state == StatePlaying || e.g.state == StateServe {
				if paddle, err := e.g.store.Paddle(); err == nil {
					e.g.autoSteerLocked(paddle)
				}
			}
			e.g.mu.Unlock()
		}
	}
}
