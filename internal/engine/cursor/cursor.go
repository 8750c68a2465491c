// Package cursor tracks the logical editing position within a buffer.
package cursor

import (
	"unicode"

	"github.com/scribeedit/scribe/internal/engine/buffer"
)

// Direction identifies a cursor movement.
type Direction uint8

// Cursor movements.
const (
	Left Direction = iota
	Right
	Up
	Down
	LineStart
	LineEnd
	WordForward
	WordBackward
	FileStart
	FileEnd
)

// String returns a human-readable movement name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case LineStart:
		return "line-start"
	case LineEnd:
		return "line-end"
	case WordForward:
		return "word-forward"
	case WordBackward:
		return "word-backward"
	case FileStart:
		return "file-start"
	case FileEnd:
		return "file-end"
	default:
		return "unknown"
	}
}

// Cursor is a logical position in the buffer. Row is always a valid line
// index and Col is within [0, line length]. Vertical movement remembers
// the column it started from so traversing short lines does not lose it.
type Cursor struct {
	Row int
	Col int

	// stickyCol is the column Up/Down aim for; -1 means unset.
	stickyCol int
}

// New returns a cursor at the start of the buffer.
func New() *Cursor {
	return &Cursor{stickyCol: -1}
}

// Position returns the cursor as a buffer position.
func (c *Cursor) Position() buffer.Position {
	return buffer.Position{Row: c.Row, Col: c.Col}
}

// Set moves the cursor to an explicit position, clamped to the buffer.
func (c *Cursor) Set(row, col int, buf *buffer.Buffer) {
	c.Row = clamp(row, 0, buf.LineCount()-1)
	c.Col = clamp(col, 0, buf.Line(c.Row).Len())
	c.stickyCol = -1
}

// Move applies a single movement, clamping the result to buffer bounds.
// Moving right at end of line wraps to the next line start; moving left at
// line start wraps to the previous line end.
func (c *Cursor) Move(dir Direction, buf *buffer.Buffer) {
	switch dir {
	case Left:
		c.moveLeft(buf)
	case Right:
		c.moveRight(buf)
	case Up:
		c.moveVertical(-1, buf)
		return // keep sticky column
	case Down:
		c.moveVertical(1, buf)
		return
	case LineStart:
		c.Col = 0
	case LineEnd:
		c.Col = buf.Line(c.Row).Len()
	case WordForward:
		c.wordForward(buf)
	case WordBackward:
		c.wordBackward(buf)
	case FileStart:
		c.Row, c.Col = 0, 0
	case FileEnd:
		c.Row = buf.LineCount() - 1
		c.Col = buf.Line(c.Row).Len()
	}
	c.stickyCol = -1
}

// GotoLine moves to the start of line n, clamped to [0, LineCount).
func (c *Cursor) GotoLine(n int, buf *buffer.Buffer) {
	c.Row = clamp(n, 0, buf.LineCount()-1)
	c.Col = 0
	c.stickyCol = -1
}

// ClampTo pulls the cursor back inside the buffer after external mutation.
func (c *Cursor) ClampTo(buf *buffer.Buffer) {
	c.Row = clamp(c.Row, 0, buf.LineCount()-1)
	c.Col = clamp(c.Col, 0, buf.Line(c.Row).Len())
}

func (c *Cursor) moveLeft(buf *buffer.Buffer) {
	if c.Col > 0 {
		c.Col--
		return
	}
	if c.Row > 0 {
		c.Row--
		c.Col = buf.Line(c.Row).Len()
	}
}

func (c *Cursor) moveRight(buf *buffer.Buffer) {
	if c.Col < buf.Line(c.Row).Len() {
		c.Col++
		return
	}
	if c.Row < buf.LineCount()-1 {
		c.Row++
		c.Col = 0
	}
}

func (c *Cursor) moveVertical(delta int, buf *buffer.Buffer) {
	if c.stickyCol < 0 {
		c.stickyCol = c.Col
	}
	c.Row = clamp(c.Row+delta, 0, buf.LineCount()-1)
	c.Col = clamp(c.stickyCol, 0, buf.Line(c.Row).Len())
}

// isWordRune reports whether r is part of a word: letters, digits and
// underscore, the conventional modal-editor boundary.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (c *Cursor) wordForward(buf *buffer.Buffer) {
	line := buf.Line(c.Row).Runes()
	if c.Col >= len(line) {
		if c.Row < buf.LineCount()-1 {
			c.Row++
			c.Col = 0
		}
		return
	}
	// Skip the current word, then any separators.
	for c.Col < len(line) && isWordRune(line[c.Col]) {
		c.Col++
	}
	for c.Col < len(line) && !isWordRune(line[c.Col]) {
		c.Col++
	}
}

func (c *Cursor) wordBackward(buf *buffer.Buffer) {
	if c.Col == 0 {
		if c.Row > 0 {
			c.Row--
			c.Col = buf.Line(c.Row).Len()
		}
		return
	}
	line := buf.Line(c.Row).Runes()
	if c.Col > len(line) {
		c.Col = len(line)
	}
	for c.Col > 0 && !isWordRune(line[c.Col-1]) {
		c.Col--
	}
	for c.Col > 0 && isWordRune(line[c.Col-1]) {
		c.Col--
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
