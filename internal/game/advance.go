package game

import (
	"github.com/tomz197/asteroid-defense/internal/audio"
	"github.com/tomz197/asteroid-defense/internal/field"
)

// AdvanceProjectiles moves every projectile up one row. Projectiles
// leaving the field top are removed; a projectile arriving in a cell
// holding an asteroid resolves as a hit. Afterwards the asteroid
// population is topped back up and the render batch flushed.
//
// Removal shifts the next projectile into the current slot, so the
// cursor only advances when nothing was removed.
func (g *Game) AdvanceProjectiles() {
	g.disp.BeginBatch()
	i := 0
	for i < g.projectiles.len() {
		p := g.projectiles.at(i).Point()
		p.Y++

		if p.Y == field.Height {
			g.removeProjectile(i)
			continue
		}

		ai, found := g.asteroids.indexOf(field.Pack(p))
		if g.resolveHit(i, true, ai, found) {
			continue
		}

		g.drawCell(field.Point{X: p.X, Y: p.Y - 1}, colorBlack)
		g.projectiles.set(i, field.Pack(p))
		g.drawCell(p, colorProjectile)
		i++
	}
	g.topUpAsteroids()
	g.disp.FlushBatch()
}

// AdvanceAsteroids moves every asteroid down one row. An asteroid
// passing below the bottom row is removed without costing a life (the
// base only takes damage through the base-hit check). An asteroid
// arriving in a cell holding a projectile resolves as a hit. After the
// pass the base cells are checked for collisions, the population is
// topped up, the batch flushed and the base redrawn in case a collision
// erased part of it.
func (g *Game) AdvanceAsteroids() {
	g.disp.BeginBatch()
	i := 0
	for i < g.asteroids.len() {
		p := g.asteroids.at(i).Point()
		g.drawCell(p, colorBlack)
		p.Y--

		if p.Y < 0 {
			g.removeAsteroid(i)
			continue
		}

		pi, found := g.projectiles.indexOf(field.Pack(p))
		if g.resolveHit(pi, found, i, true) {
			continue
		}

		g.asteroids.set(i, field.Pack(p))
		g.drawCell(p, colorAsteroid)
		i++
	}
	g.checkAllBaseHits()
	g.topUpAsteroids()
	g.disp.FlushBatch()
	g.drawBase(colorBase)
}

// resolveHit is the single choke point for projectile-asteroid
// collisions, whichever entity moved into the other. When both indices
// are present it removes the pair, credits the score and plays the coin
// cue; otherwise it reports no hit and does nothing.
func (g *Game) resolveHit(projectileIdx int, projectileOK bool, asteroidIdx int, asteroidOK bool) bool {
	if !projectileOK || !asteroidOK {
		return false
	}
	g.removeProjectile(projectileIdx)
	g.removeAsteroid(asteroidIdx)
	g.board.AddToScore(1)
	g.snd.Play(audio.TrackCoin)
	return true
}

// removeAsteroid erases the asteroid's pixel and compacts the store.
// Invalid indices are ignored, so lookups can be chained in directly.
func (g *Game) removeAsteroid(i int) {
	if i < 0 || i >= g.asteroids.len() {
		return
	}
	g.drawCell(g.asteroids.at(i).Point(), colorBlack)
	g.asteroids.remove(i)
}

// removeProjectile erases the projectile's pixel and compacts the store.
func (g *Game) removeProjectile(i int) {
	if i < 0 || i >= g.projectiles.len() {
		return
	}
	g.drawCell(g.projectiles.at(i).Point(), colorBlack)
	g.projectiles.remove(i)
}
