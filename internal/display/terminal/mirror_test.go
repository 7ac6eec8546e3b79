package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/asteroid-defense/internal/display"
	"github.com/tomz197/asteroid-defense/internal/field"
)

func TestSetPixelEmitsCursorAndColour(t *testing.T) {
	var out bytes.Buffer
	m := NewMirror(&out)

	// Top-left field cell (0, 15) lands just inside the border.
	m.SetPixel(field.Point{X: 0, Y: 15}, display.Green)

	got := out.String()
	if !strings.Contains(got, "\033[2;2H") {
		t.Errorf("output missing cursor move to row 2 col 2: %q", got)
	}
	if !strings.Contains(got, "\033[42m") {
		t.Errorf("output missing green background SGR: %q", got)
	}
}

func TestBottomRowMapsToLastInteriorRow(t *testing.T) {
	var out bytes.Buffer
	m := NewMirror(&out)

	m.SetPixel(field.Point{X: 7, Y: 0}, display.Yellow)

	// y=0 is the row just above the bottom border; x=7 is the last cell pair.
	if !strings.Contains(out.String(), "\033[17;16H") {
		t.Errorf("output = %q, want cursor at row 17 col 16", out.String())
	}
}

func TestAttrCachingSuppressesRepeats(t *testing.T) {
	var out bytes.Buffer
	m := NewMirror(&out)

	m.BeginBatch()
	m.SetPixel(field.Point{X: 1, Y: 5}, display.Red)
	m.SetPixel(field.Point{X: 2, Y: 5}, display.Red)
	m.FlushBatch()

	if n := strings.Count(out.String(), "\033[41m"); n != 1 {
		t.Errorf("red SGR emitted %d times, want 1", n)
	}
}

func TestBatchDefersOutput(t *testing.T) {
	var out bytes.Buffer
	m := NewMirror(&out)

	m.BeginBatch()
	m.SetPixel(field.Point{X: 3, Y: 3}, display.Green)
	if out.Len() != 0 {
		t.Fatalf("wrote %d bytes before FlushBatch", out.Len())
	}
	m.FlushBatch()
	if out.Len() == 0 {
		t.Fatal("FlushBatch wrote nothing")
	}
}

func TestClearRedrawsBorder(t *testing.T) {
	var out bytes.Buffer
	m := NewMirror(&out)

	m.Clear()

	got := out.String()
	if !strings.Contains(got, "\033[2J") {
		t.Errorf("clear output missing screen wipe: %q", got[:40])
	}
	if !strings.Contains(got, "\033[7m") {
		t.Errorf("clear output missing reverse-video border")
	}
}

func TestDrawStatus(t *testing.T) {
	var out bytes.Buffer
	m := NewMirror(&out)

	m.DrawStatus(42, 3)

	if !strings.Contains(out.String(), "SCORE   42  LIVES 3") {
		t.Errorf("status output = %q", out.String())
	}
}
