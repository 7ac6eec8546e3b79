package game

import "github.com/tomz197/asteroid-defense/internal/field"

// FireProjectile launches a projectile in the cell directly above the
// base. The shot is refused when all projectiles are in flight or when
// that cell already holds one. If an asteroid happens to occupy the
// launch cell the shot resolves as an immediate hit and the projectile
// is never drawn.
func (g *Game) FireProjectile() bool {
	launch := field.Point{X: g.base, Y: launchRow}

	if g.projectiles.full() {
		return false
	}
	if _, occupied := g.projectiles.indexOf(field.Pack(launch)); occupied {
		return false
	}

	g.disp.BeginBatch()
	idx := g.projectiles.len()
	g.projectiles.add(field.Pack(launch))

	ai, found := g.asteroids.indexOf(field.Pack(launch))
	if !g.resolveHit(idx, true, ai, found) {
		g.drawCell(launch, colorProjectile)
	}
	g.disp.FlushBatch()
	return true
}
