// Package loop runs one player's game session on a terminal: it owns
// the tick timing, polls input, drives the game engine, and draws the
// status line and overlays. Each session has its own game state, so any
// number of sessions (local or SSH) can run side by side.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/asteroid-defense/internal/audio"
	"github.com/tomz197/asteroid-defense/internal/display"
	"github.com/tomz197/asteroid-defense/internal/display/terminal"
	"github.com/tomz197/asteroid-defense/internal/game"
	"github.com/tomz197/asteroid-defense/internal/input"
	"github.com/tomz197/asteroid-defense/internal/score"
)

// pollInterval is how often input is drained and due ticks are run.
const pollInterval = time.Second / 60

// Default tick rates and session settings.
const (
	DefaultProjectileTick = 250 * time.Millisecond
	DefaultAsteroidTick   = 700 * time.Millisecond
	DefaultLives          = 4
)

// Key repeat limits, so a held key moves and fires at a playable rate.
const (
	moveRepeat = 120 * time.Millisecond
	fireRepeat = 300 * time.Millisecond
)

// Options configure a game session. Zero values take the defaults.
type Options struct {
	ProjectileTick time.Duration
	AsteroidTick   time.Duration
	Lives          int
	Seed           int64           // 0 means time-based
	Audio          audio.Player    // nil means silent
	Matrix         display.Display // optional LED matrix alongside the mirror
}

func (o *Options) fillDefaults() {
	if o.ProjectileTick <= 0 {
		o.ProjectileTick = DefaultProjectileTick
	}
	if o.AsteroidTick <= 0 {
		o.AsteroidTick = DefaultAsteroidTick
	}
	if o.Lives <= 0 {
		o.Lives = DefaultLives
	}
	if o.Audio == nil {
		o.Audio = audio.Nop{}
	}
}

// Run starts a game session reading keys from r and drawing to w. It
// returns when the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	opts.fillDefaults()

	mirror := terminal.NewMirror(w)
	var target display.Display = mirror
	if opts.Matrix != nil {
		target = display.Multi{mirror, opts.Matrix}
	}

	terminal.HideCursor(w)
	defer terminal.ShowCursor(w)
	defer terminal.ClearScreen(w)

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	board := score.NewBoard(opts.Lives)
	s := &session{
		game:   game.New(target, board, opts.Audio, rng),
		board:  board,
		mirror: mirror,
		stream: input.StartStream(r),
		opts:   opts,
	}
	s.scheduleTicks(time.Now())
	mirror.DrawStatus(board.Score(), board.Lives())

	for {
		frameStart := time.Now()

		inp := input.ReadInput(s.stream)
		if inp.Quit {
			return nil
		}

		switch s.phase {
		case phasePlaying:
			s.playFrame(inp, frameStart)
		case phaseGameOver:
			if inp.Enter {
				s.restart(frameStart)
			}
		}

		elapsed := time.Since(frameStart)
		if elapsed < pollInterval {
			time.Sleep(pollInterval - elapsed)
		}
	}
}
