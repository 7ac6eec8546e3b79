// Package display defines the render target the game engine draws to.
// Implementations stage pixel changes between BeginBatch and FlushBatch
// so one tick's worth of updates reaches the hardware (or terminal) as a
// single burst.
package display

import "github.com/tomz197/asteroid-defense/internal/field"

// Color identifies one of the pixel colours the game uses.
type Color uint8

const (
	Black Color = iota // erase
	Green
	Red
	Yellow
)

// Entity colours.
const (
	ColorAsteroid   = Green
	ColorProjectile = Red
	ColorBase       = Yellow
)

// Display receives pixel updates from the game engine. Calls must not
// block; batching is an optimization hint only and implementations may
// render immediately.
type Display interface {
	// SetPixel stages a colour change for one field cell.
	SetPixel(p field.Point, c Color)
	// BeginBatch marks the start of one tick's updates.
	BeginBatch()
	// FlushBatch pushes all staged updates out.
	FlushBatch()
	// Clear blanks the whole field.
	Clear()
}

// Nop discards all updates. Used by headless games and tests.
type Nop struct{}

func (Nop) SetPixel(field.Point, Color) {}
func (Nop) BeginBatch()                 {}
func (Nop) FlushBatch()                 {}
func (Nop) Clear()                      {}

// Multi fans every call out to each target in order, so the LED matrix
// and the terminal mirror render in lockstep.
type Multi []Display

func (m Multi) SetPixel(p field.Point, c Color) {
	for _, d := range m {
		d.SetPixel(p, c)
	}
}

func (m Multi) BeginBatch() {
	for _, d := range m {
		d.BeginBatch()
	}
}

func (m Multi) FlushBatch() {
	for _, d := range m {
		d.FlushBatch()
	}
}

func (m Multi) Clear() {
	for _, d := range m {
		d.Clear()
	}
}
