// Package terminal renders the game field as an ANSI block graphic, the
// debug mirror of the LED matrix. Each field cell is two terminal
// columns wide so the aspect ratio is roughly square, with row 15 at the
// top of the screen and the base row at the bottom.
package terminal

import (
	"fmt"
	"io"

	"github.com/tomz197/asteroid-defense/internal/display"
	"github.com/tomz197/asteroid-defense/internal/field"
)

// Screen layout. The field interior sits inside a reverse-video border;
// the status line goes below it.
const (
	borderTopRow    = 1
	borderLeftCol   = 1
	cellWidth       = 2
	interiorLeftCol = borderLeftCol + 1
	borderRightCol  = interiorLeftCol + field.Width*cellWidth
	borderBottomRow = borderTopRow + field.Height + 1
	statusRow       = borderBottomRow + 2
)

// SGR background codes per colour.
var attrForColor = map[display.Color]int{
	display.Black:  40,
	display.Green:  42,
	display.Red:    41,
	display.Yellow: 43,
}

const (
	attrReset   = 0
	attrReverse = 7
)

// Mirror is a display.Display drawing to a terminal.
type Mirror struct {
	cw       *ChunkWriter
	batching bool
}

// NewMirror creates a mirror writing ANSI sequences to w. The caller is
// expected to have put the terminal in raw mode and hidden the cursor.
func NewMirror(w io.Writer) *Mirror {
	return &Mirror{cw: NewChunkWriter(w)}
}

// SetPixel draws one field cell in the given colour.
func (m *Mirror) SetPixel(p field.Point, c display.Color) {
	m.cw.MoveCursor(interiorLeftCol+p.X*cellWidth, borderTopRow+field.Height-p.Y)
	m.cw.SetAttr(attrForColor[c])
	m.cw.WriteString("  ")
	m.autoFlush()
}

// BeginBatch starts accumulating output for one tick.
func (m *Mirror) BeginBatch() {
	m.batching = true
	m.cw.InvalidateAttr()
}

// FlushBatch writes the accumulated tick output in one burst.
func (m *Mirror) FlushBatch() {
	m.batching = false
	m.cw.SetAttr(attrReset)
	_ = m.cw.Flush()
}

// Clear wipes the screen and redraws the border around a blank field.
func (m *Mirror) Clear() {
	m.cw.InvalidateAttr()
	m.cw.WriteString("\033[2J")
	m.drawBorder()
	m.cw.SetAttr(attrForColor[display.Black])
	for y := 0; y < field.Height; y++ {
		m.cw.MoveCursor(interiorLeftCol, borderTopRow+1+y)
		for x := 0; x < field.Width; x++ {
			m.cw.WriteString("  ")
		}
	}
	m.cw.SetAttr(attrReset)
	m.autoFlush()
}

// DrawStatus writes the score and lives line beneath the field.
func (m *Mirror) DrawStatus(score, lives int) {
	m.cw.MoveCursor(borderLeftCol, statusRow)
	m.cw.SetAttr(attrReset)
	m.cw.WriteString(fmt.Sprintf("SCORE %4d  LIVES %d", score, lives))
	m.cw.WriteString("\033[K")
	m.autoFlush()
}

// DrawPaused shows or clears the pause marker next to the status line.
func (m *Mirror) DrawPaused(paused bool) {
	m.cw.MoveCursor(borderLeftCol, statusRow+1)
	m.cw.SetAttr(attrReset)
	if paused {
		m.cw.WriteString("PAUSED")
	} else {
		m.cw.WriteString("\033[K")
	}
	m.autoFlush()
}

// DrawGameOver overlays the game-over banner across the field.
func (m *Mirror) DrawGameOver(score int) {
	banner := []string{
		"            ",
		" GAME OVER  ",
		fmt.Sprintf(" SCORE %4d ", score),
		" ENTER to   ",
		"  restart   ",
		"            ",
	}
	m.cw.SetAttr(attrReverse)
	top := borderTopRow + field.Height/2 - len(banner)/2
	for i, line := range banner {
		m.cw.MoveCursor(interiorLeftCol+1, top+i)
		m.cw.WriteString(line)
	}
	m.cw.SetAttr(attrReset)
	m.autoFlush()
}

// drawBorder draws the rectangle framing the field in reverse video.
func (m *Mirror) drawBorder() {
	m.cw.SetAttr(attrReverse)
	for col := borderLeftCol; col <= borderRightCol; col++ {
		m.cw.MoveCursor(col, borderTopRow)
		m.cw.WriteString(" ")
		m.cw.MoveCursor(col, borderBottomRow)
		m.cw.WriteString(" ")
	}
	for row := borderTopRow; row <= borderBottomRow; row++ {
		m.cw.MoveCursor(borderLeftCol, row)
		m.cw.WriteString(" ")
		m.cw.MoveCursor(borderRightCol, row)
		m.cw.WriteString(" ")
	}
	m.cw.SetAttr(attrReset)
}

// autoFlush pushes output immediately when not inside a batch.
func (m *Mirror) autoFlush() {
	if !m.batching {
		_ = m.cw.Flush()
	}
}

// Compile-time check that Mirror implements display.Display.
var _ display.Display = (*Mirror)(nil)
