// Package field defines the playing-field geometry and the packed
// single-byte position representation used by the entity stores.
package field

// Field dimensions. x runs 0..Width-1 from the left, y runs 0..Height-1
// from the bottom (the base sits on row 0, asteroids enter at row 15).
const (
	Width  = 8
	Height = 16
)

// Point is an (x, y) cell on the field.
type Point struct {
	X, Y int
}

// InBounds reports whether the point lies inside the field.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Packed stores a position in one byte: x in the high nibble, y in the
// low nibble. Used only at the storage boundary; game logic works on
// Point values.
type Packed uint8

// Invalid is the all-ones absence marker. Pack never produces it for an
// in-bounds point, since x never exceeds 7.
const Invalid Packed = 0xFF

// Pack encodes a point. The caller guarantees the point is in bounds.
func Pack(p Point) Packed {
	return Packed(p.X<<4 | (p.Y & 0x0F))
}

// Point decodes the packed position.
func (pp Packed) Point() Point {
	return Point{X: int(pp >> 4), Y: int(pp & 0x0F)}
}
