// Package engine coordinates the text buffer and cursor for one editing
// session. It is the single mutation path used by the input modes: every
// edit clamps through the cursor first, so the buffer never sees an
// out-of-bounds position.
package engine

import (
	"github.com/scribeedit/scribe/internal/engine/buffer"
	"github.com/scribeedit/scribe/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Position represents a row/column position in the buffer.
	Position = buffer.Position

	// Revision identifies a buffer state.
	Revision = buffer.Revision

	// Direction identifies a cursor movement.
	Direction = cursor.Direction
)

// Engine ties a buffer to its cursor. It is exclusively owned by the
// event loop.
type Engine struct {
	buf *buffer.Buffer
	cur *cursor.Cursor
}

// New creates an engine over an empty buffer.
func New(opts ...buffer.Option) *Engine {
	return &Engine{
		buf: buffer.New(opts...),
		cur: cursor.New(),
	}
}

// NewFromLines creates an engine over the given document lines.
func NewFromLines(lines []string, opts ...buffer.Option) *Engine {
	return &Engine{
		buf: buffer.FromLines(lines, opts...),
		cur: cursor.New(),
	}
}

// Buffer returns the underlying buffer.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor.
func (e *Engine) Cursor() *cursor.Cursor {
	return e.cur
}

// Move applies a cursor movement.
func (e *Engine) Move(dir Direction) {
	e.cur.Move(dir, e.buf)
}

// GotoLine moves the cursor to the start of line n, clamped.
func (e *Engine) GotoLine(n int) {
	e.cur.GotoLine(n, e.buf)
}

// SetCursor places the cursor at an explicit position, clamped.
func (e *Engine) SetCursor(row, col int) {
	e.cur.Set(row, col, e.buf)
}

// InsertRune inserts a rune at the cursor and advances one column.
func (e *Engine) InsertRune(r rune) {
	e.buf.InsertRune(e.cur.Row, e.cur.Col, r)
	e.cur.Set(e.cur.Row, e.cur.Col+1, e.buf)
}

// NewlineAtCursor splits the current line at the cursor and moves to the
// start of the new line.
func (e *Engine) NewlineAtCursor() {
	e.buf.SplitLine(e.cur.Row, e.cur.Col)
	e.cur.Set(e.cur.Row+1, 0, e.buf)
}

// Backspace deletes the rune before the cursor, joining lines at column 0.
func (e *Engine) Backspace() {
	pos := e.buf.DeleteRune(e.cur.Row, e.cur.Col)
	e.cur.Set(pos.Row, pos.Col, e.buf)
}

// DeleteUnderCursor removes the rune the cursor sits on.
func (e *Engine) DeleteUnderCursor() {
	e.buf.DeleteRuneAt(e.cur.Row, e.cur.Col)
	e.cur.ClampTo(e.buf)
}

// OpenLineBelow inserts an empty line under the cursor and moves to it.
func (e *Engine) OpenLineBelow() {
	e.buf.InsertLine(e.cur.Row + 1)
	e.cur.Set(e.cur.Row+1, 0, e.buf)
}

// Modified reports whether the buffer has unsaved changes.
func (e *Engine) Modified() bool {
	return e.buf.Modified()
}
