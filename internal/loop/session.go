package loop

import (
	"time"

	"github.com/tomz197/asteroid-defense/internal/display/terminal"
	"github.com/tomz197/asteroid-defense/internal/game"
	"github.com/tomz197/asteroid-defense/internal/input"
	"github.com/tomz197/asteroid-defense/internal/score"
)

// phase is the session's screen state.
type phase int

const (
	phasePlaying phase = iota
	phaseGameOver
)

// session holds everything one running game needs between frames.
type session struct {
	game   *game.Game
	board  *score.Board
	mirror *terminal.Mirror
	stream *input.Stream
	opts   Options

	phase          phase
	nextProjectile time.Time
	nextAsteroid   time.Time
	nextMove       time.Time
	nextFire       time.Time
	pauseHeld      bool
}

// scheduleTicks restarts both tick deadlines from now, used at session
// start and when resuming from pause so a long pause doesn't trigger a
// burst of catch-up ticks.
func (s *session) scheduleTicks(now time.Time) {
	s.nextProjectile = now.Add(s.opts.ProjectileTick)
	s.nextAsteroid = now.Add(s.opts.AsteroidTick)
}

// playFrame handles one frame of active play: pause toggling, base
// movement, firing, and any due advance ticks.
func (s *session) playFrame(inp input.Input, now time.Time) {
	// Edge-triggered pause toggle.
	if inp.Pause && !s.pauseHeld {
		s.game.SetPaused(!s.game.Paused())
		s.mirror.DrawPaused(s.game.Paused())
		if !s.game.Paused() {
			s.scheduleTicks(now)
		}
	}
	s.pauseHeld = inp.Pause
	if s.game.Paused() {
		return
	}

	// Holding a direction repeats at moveRepeat; opposing keys cancel.
	if inp.Left != inp.Right && now.After(s.nextMove) {
		dir := game.MoveLeft
		if inp.Right {
			dir = game.MoveRight
		}
		s.game.MoveBase(dir)
		s.nextMove = now.Add(moveRepeat)
	}
	if !inp.Left && !inp.Right {
		s.nextMove = time.Time{}
	}

	if inp.Fire && now.After(s.nextFire) {
		s.game.FireProjectile()
		s.nextFire = now.Add(fireRepeat)
	}
	if !inp.Fire {
		s.nextFire = time.Time{}
	}

	if now.After(s.nextProjectile) {
		s.game.AdvanceProjectiles()
		s.nextProjectile = now.Add(s.opts.ProjectileTick)
	}
	if now.After(s.nextAsteroid) {
		s.game.AdvanceAsteroids()
		s.nextAsteroid = now.Add(s.opts.AsteroidTick)
	}

	s.mirror.DrawStatus(s.board.Score(), s.board.Lives())

	if s.game.IsGameOver() {
		s.phase = phaseGameOver
		s.mirror.DrawGameOver(s.board.Score())
	}
}

// restart begins a fresh game after game over.
func (s *session) restart(now time.Time) {
	input.ResetKeyInput(s.stream)
	s.board.Reset(s.opts.Lives)
	s.game.Reset()
	s.scheduleTicks(now)
	s.mirror.DrawStatus(s.board.Score(), s.board.Lives())
	s.phase = phasePlaying
}
