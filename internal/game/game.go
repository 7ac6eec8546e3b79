// Package game implements the state engine of the base-defense game: a
// base station on the bottom rows fires projectiles at asteroids
// descending the 8x16 field. The engine is single-threaded and
// tick-driven; an external loop calls AdvanceProjectiles,
// AdvanceAsteroids, MoveBase and FireProjectile serially, and all
// rendering and audio goes to fire-and-forget collaborators.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/asteroid-defense/internal/audio"
	"github.com/tomz197/asteroid-defense/internal/display"
	"github.com/tomz197/asteroid-defense/internal/field"
	"github.com/tomz197/asteroid-defense/internal/score"
)

// Entity capacities.
const (
	MaxAsteroids   = 16
	MaxProjectiles = 4
)

// launchRow is the row projectiles appear in, just above the base.
const launchRow = 2

// initialClearRows keeps the rows nearest the base free of asteroids
// when a game starts.
const initialClearRows = 3

// spawnAttempts bounds the random-placement retries per spawn. Running
// out is not an error: the field self-heals on the next tick.
const spawnAttempts = 128

// Direction selects a base move.
type Direction int

const (
	MoveLeft Direction = iota
	MoveRight
)

// Game holds all state for one session. Construct one per game; nothing
// is shared between instances, so tests and concurrent SSH sessions each
// get their own world.
type Game struct {
	base        int
	asteroids   store
	projectiles store
	paused      bool

	rng   *rand.Rand
	disp  display.Display
	board *score.Board
	snd   audio.Player
}

// New creates a game wired to its collaborators and initializes the
// field. A nil rng gets a time-based seed; pass a seeded rand.Rand for
// reproducible spawn layouts.
func New(disp display.Display, board *score.Board, snd audio.Player, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		rng:   rng,
		disp:  disp,
		board: board,
		snd:   snd,
	}
	g.Reset()
	return g
}

// Reset reinitializes the field: base in the centre column, no
// projectiles, a full population of asteroids kept clear of the rows
// nearest the base, sorted bottom-up, and the whole display redrawn.
func (g *Game) Reset() {
	g.base = field.Width/2 - 1
	g.asteroids = newStore(MaxAsteroids)
	g.projectiles = newStore(MaxProjectiles)
	g.paused = false

	g.disp.BeginBatch()
	for i := 0; i < MaxAsteroids; i++ {
		g.addAsteroid()
	}
	g.sortAsteroids()
	g.redrawAll()
	g.disp.FlushBatch()
}

// Base returns the x position of the base centre column.
func (g *Game) Base() int {
	return g.base
}

// IsGameOver reports whether the life counter has run out.
func (g *Game) IsGameOver() bool {
	return g.board.Lives() == 0
}

// SetPaused sets the pause flag. Pausing has no side effects; the
// external loop simply stops calling the tick functions.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Paused returns the pause flag.
func (g *Game) Paused() bool {
	return g.paused
}
