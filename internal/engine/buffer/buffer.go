package buffer

import "strings"

// Buffer owns the document as an ordered sequence of lines.
//
// The buffer is exclusively owned by the event loop; it is not safe for
// concurrent use and needs no locking by construction.
type Buffer struct {
	lines    []*Line
	tabWidth int

	revision Revision
	saved    Revision
}

// New creates an empty buffer containing a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:    []*Line{NewLine("")},
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromLines creates a buffer from a line sequence.
// An empty sequence yields a single empty line.
func FromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	if len(lines) == 0 {
		return b
	}
	b.lines = make([]*Line, len(lines))
	for i, s := range lines {
		b.lines[i] = NewLine(s)
	}
	return b
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at the given row.
func (b *Buffer) Line(row int) *Line {
	return b.lines[row]
}

// Lines flattens the buffer back to a line sequence for saving.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// Text returns the full document joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// TabWidth returns the configured tab stop width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// SetTabWidth changes the tab stop width used for rendered widths.
func (b *Buffer) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	b.tabWidth = width
}

// Revision returns the current revision. It changes on every mutation.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// Modified reports whether the buffer has changed since the last MarkSaved.
func (b *Buffer) Modified() bool {
	return b.revision != b.saved
}

// MarkSaved records the current revision as the on-disk state.
func (b *Buffer) MarkSaved() {
	b.saved = b.revision
}

// InsertRune inserts a rune at the given position.
func (b *Buffer) InsertRune(row, col int, r rune) {
	b.lines[row].insertAt(col, r)
	b.revision++
}

// DeleteRune deletes the rune before the given position and returns where
// the cursor lands. At column 0 of a non-first row the line is joined with
// the previous one; at (0, 0) the buffer is unchanged.
func (b *Buffer) DeleteRune(row, col int) Position {
	if col > 0 {
		b.lines[row].deleteAt(col - 1)
		b.revision++
		return Position{Row: row, Col: col - 1}
	}
	if row == 0 {
		return Position{}
	}
	joinCol := b.lines[row-1].Len()
	b.JoinLine(row - 1)
	return Position{Row: row - 1, Col: joinCol}
}

// DeleteRuneAt deletes the rune under the given position, joining with the
// next line when the cursor sits past the last rune.
func (b *Buffer) DeleteRuneAt(row, col int) {
	line := b.lines[row]
	if col < line.Len() {
		line.deleteAt(col)
		b.revision++
		return
	}
	if row+1 < len(b.lines) {
		b.JoinLine(row)
	}
}

// SplitLine truncates the line at col and inserts the remainder as a new
// line at row+1.
func (b *Buffer) SplitLine(row, col int) {
	rest := b.lines[row].splitAt(col)
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = rest
	b.revision++
}

// InsertLine inserts an empty line at the given row.
func (b *Buffer) InsertLine(row int) {
	b.lines = append(b.lines, nil)
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = NewLine("")
	b.revision++
}

// JoinLine merges row+1 into row. It is a no-op on the last line, which
// preserves the at-least-one-line invariant.
func (b *Buffer) JoinLine(row int) {
	if row+1 >= len(b.lines) {
		return
	}
	b.lines[row].appendLine(b.lines[row+1])
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	b.revision++
}
