package terminal

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// maxChunkSize caps single writes to the underlying writer so output
// flows well over slow links (e.g. an SSH session).
const maxChunkSize = 2048

// ChunkWriter accumulates ANSI output and writes it in chunks. Use
// MoveCursor, SetAttr and WriteString to accumulate, then Flush to push
// everything to the underlying writer in one burst.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting

	// Current SGR attribute, to suppress redundant escape sequences.
	// -1 means unknown (next SetAttr always emits).
	curAttr int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{
		bufw:    bufio.NewWriterSize(w, 8192),
		curAttr: -1,
	}
}

// MoveCursor appends an ANSI cursor position sequence. col and row are
// 1-based terminal coordinates.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col), 10))
	cw.buf.WriteByte('H')
}

// SetAttr appends an SGR sequence, unless attr is already current.
func (cw *ChunkWriter) SetAttr(attr int) {
	if cw.curAttr == attr {
		return
	}
	cw.curAttr = attr
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(attr), 10))
	cw.buf.WriteByte('m')
}

// InvalidateAttr forgets the cached SGR attribute so the next SetAttr
// emits unconditionally. Call it when something else may have written to
// the terminal.
func (cw *ChunkWriter) InvalidateAttr() {
	cw.curAttr = -1
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Flush writes the accumulated buffer to the underlying writer in
// chunks, then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}
