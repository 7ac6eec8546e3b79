package game

import "github.com/tomz197/asteroid-defense/internal/field"

// addAsteroid places a game-start asteroid, keeping the rows nearest the
// base clear.
func (g *Game) addAsteroid() {
	g.addAsteroidInRows(initialClearRows)
}

// addAsteroidInRows tries to place one asteroid at a uniformly random
// unoccupied cell with y >= blockedRows. Gives up silently once the
// store is full or the retry budget runs out; a temporarily
// under-populated field corrects itself on the next tick.
func (g *Game) addAsteroidInRows(blockedRows int) {
	if g.asteroids.full() {
		return
	}

	for attempt := 0; attempt < spawnAttempts; attempt++ {
		p := field.Point{
			X: g.rng.Intn(field.Width),
			Y: blockedRows + g.rng.Intn(field.Height-blockedRows),
		}
		if _, occupied := g.asteroids.indexOf(field.Pack(p)); occupied {
			continue
		}
		g.asteroids.add(field.Pack(p))
		g.drawCell(p, colorAsteroid)
		return
	}
}

// topUpAsteroids restores the population to capacity, one spawn attempt
// per missing asteroid. During play new asteroids only enter in the very
// top row.
func (g *Game) topUpAsteroids() {
	for i := g.asteroids.len(); i < MaxAsteroids; i++ {
		g.addAsteroidInRows(field.Height - 1)
	}
}

// sortAsteroids orders the store by ascending y (stable insertion sort),
// so lowest-row asteroids come first. Run once after the initial
// population; steady-state spawns only land in the top row, so the order
// is allowed to drift during play.
func (g *Game) sortAsteroids() {
	for i := 1; i < g.asteroids.len(); i++ {
		moving := g.asteroids.at(i)
		j := i
		for j > 0 && g.asteroids.at(j-1).Point().Y > moving.Point().Y {
			g.asteroids.set(j, g.asteroids.at(j-1))
			j--
		}
		g.asteroids.set(j, moving)
	}
}
