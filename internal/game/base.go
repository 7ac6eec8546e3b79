package game

import (
	"github.com/tomz197/asteroid-defense/internal/audio"
	"github.com/tomz197/asteroid-defense/internal/field"
)

// MoveBase shifts the base one column. The move is refused at the field
// edges; there is no wraparound. On success the base is erased, moved,
// checked against asteroids at its new cells and redrawn.
func (g *Game) MoveBase(dir Direction) bool {
	if (g.base == 0 && dir == MoveLeft) || (g.base == field.Width-1 && dir == MoveRight) {
		return false
	}

	g.disp.BeginBatch()
	g.drawBase(colorBlack)
	if dir == MoveLeft {
		g.base--
	} else {
		g.base++
	}
	g.checkAllBaseHits()
	g.drawBase(colorBase)
	g.disp.FlushBatch()
	return true
}

// checkAllBaseHits tests the four base-occupied cells in a fixed order.
// Each asteroid found costs one life independently; two hits in the same
// tick cost two lives.
func (g *Game) checkAllBaseHits() {
	g.checkBaseHit(field.Point{X: g.base, Y: 1})
	g.checkBaseHit(field.Point{X: g.base - 1, Y: 0})
	g.checkBaseHit(field.Point{X: g.base, Y: 0})
	g.checkBaseHit(field.Point{X: g.base + 1, Y: 0})
}

// checkBaseHit destroys an asteroid occupying the given cell, costing
// one life and playing the error cue.
func (g *Game) checkBaseHit(p field.Point) {
	if !p.InBounds() {
		return
	}
	i, found := g.asteroids.indexOf(field.Pack(p))
	if !found {
		return
	}
	g.removeAsteroid(i)
	g.board.ChangeLives(-1)
	g.snd.Play(audio.TrackError)
}
