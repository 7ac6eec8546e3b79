package game

import (
	"github.com/tomz197/asteroid-defense/internal/display"
	"github.com/tomz197/asteroid-defense/internal/field"
)

// Colour aliases, so the engine reads in game terms.
const (
	colorBlack      = display.Black
	colorAsteroid   = display.ColorAsteroid
	colorProjectile = display.ColorProjectile
	colorBase       = display.ColorBase
)

// drawCell stages one cell update on the display.
func (g *Game) drawCell(p field.Point, c display.Color) {
	g.disp.SetPixel(p, c)
}

// drawBase draws the base's plus shape (minus the top corners): three
// cells on the bottom row centred on the base column, one cell above the
// centre. Cells pushed off the field edge are skipped.
func (g *Game) drawBase(c display.Color) {
	for x := g.base - 1; x <= g.base+1; x++ {
		if p := (field.Point{X: x, Y: 0}); p.InBounds() {
			g.drawCell(p, c)
		}
	}
	g.drawCell(field.Point{X: g.base, Y: 1}, c)
}

// redrawAll repaints the whole field from scratch.
func (g *Game) redrawAll() {
	g.disp.Clear()
	g.drawBase(colorBase)
	for i := 0; i < g.asteroids.len(); i++ {
		g.drawCell(g.asteroids.at(i).Point(), colorAsteroid)
	}
	for i := 0; i < g.projectiles.len(); i++ {
		g.drawCell(g.projectiles.at(i).Point(), colorProjectile)
	}
}
