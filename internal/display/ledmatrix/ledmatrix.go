// Package ledmatrix drives the 8x16 LED matrix over its SPI command
// protocol. The driver only builds the byte stream; the io.Writer it is
// given is the SPI transport (a spidev file, a serial port, or a buffer
// in tests).
package ledmatrix

import (
	"io"

	"github.com/tomz197/asteroid-defense/internal/display"
	"github.com/tomz197/asteroid-defense/internal/field"
)

// Matrix command bytes.
const (
	cmdUpdatePixel = 0x02
	cmdClearScreen = 0x0F
)

// Game coordinates map onto the matrix with the field rotated: game rows
// (y, counted from the bottom) are matrix rows, and game columns run
// right-to-left across the matrix columns.
func matrixPosition(p field.Point) (row, col uint8) {
	return uint8(p.Y), uint8(field.Width - 1 - p.X)
}

// Driver encodes pixel updates as matrix commands. Between BeginBatch
// and FlushBatch the commands accumulate in memory and go out in one
// write, mirroring the buffered transfer mode of the matrix firmware.
// Write errors are sticky and reported by Err; the game engine treats
// the display as fire-and-forget and never sees them.
type Driver struct {
	w        io.Writer
	buf      []byte
	batching bool
	err      error
}

// New creates a driver writing the command stream to w.
func New(w io.Writer) *Driver {
	return &Driver{w: w}
}

// SetPixel stages or sends a single pixel update.
func (d *Driver) SetPixel(p field.Point, c display.Color) {
	row, col := matrixPosition(p)
	d.send(cmdUpdatePixel, row<<4|col, byte(c))
}

// BeginBatch starts buffering commands.
func (d *Driver) BeginBatch() {
	d.batching = true
	d.buf = d.buf[:0]
}

// FlushBatch writes the buffered commands and returns to immediate mode.
func (d *Driver) FlushBatch() {
	if d.batching && len(d.buf) > 0 && d.err == nil {
		if _, err := d.w.Write(d.buf); err != nil {
			d.err = err
		}
	}
	d.batching = false
	d.buf = d.buf[:0]
}

// Clear blanks the matrix.
func (d *Driver) Clear() {
	d.send(cmdClearScreen)
}

// Err returns the first write error encountered, if any.
func (d *Driver) Err() error {
	return d.err
}

func (d *Driver) send(bytes ...byte) {
	if d.batching {
		d.buf = append(d.buf, bytes...)
		return
	}
	if d.err == nil {
		if _, err := d.w.Write(bytes); err != nil {
			d.err = err
		}
	}
}

// Compile-time check that Driver implements display.Display.
var _ display.Display = (*Driver)(nil)
