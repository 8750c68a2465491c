package buffer

import "github.com/mattn/go-runewidth"

// Line is a single line of text stored as Unicode scalar values.
// It caches its rendered width so the renderer does not re-expand tabs
// for unchanged lines.
type Line struct {
	runes []rune

	// Cached rendered width. Valid only while widthTab matches the tab
	// width it was computed for; -1 means not computed.
	width    int
	widthTab int
}

// NewLine creates a line from a string.
func NewLine(s string) *Line {
	return &Line{runes: []rune(s), width: -1}
}

// Len returns the number of runes in the line.
func (l *Line) Len() int {
	return len(l.runes)
}

// String returns the line content.
func (l *Line) String() string {
	return string(l.runes)
}

// Runes returns the line content as a rune slice.
// The slice must not be mutated by callers.
func (l *Line) Runes() []rune {
	return l.runes
}

// RuneAt returns the rune at the given column.
func (l *Line) RuneAt(col int) rune {
	return l.runes[col]
}

// insertAt inserts a rune at the given column.
func (l *Line) insertAt(col int, r rune) {
	l.runes = append(l.runes, 0)
	copy(l.runes[col+1:], l.runes[col:])
	l.runes[col] = r
	l.invalidate()
}

// deleteAt removes the rune at the given column.
func (l *Line) deleteAt(col int) {
	l.runes = append(l.runes[:col], l.runes[col+1:]...)
	l.invalidate()
}

// splitAt truncates the line at col and returns the remainder as a new line.
func (l *Line) splitAt(col int) *Line {
	rest := make([]rune, len(l.runes)-col)
	copy(rest, l.runes[col:])
	l.runes = l.runes[:col]
	l.invalidate()
	return &Line{runes: rest, width: -1}
}

// appendLine appends another line's content to this one.
func (l *Line) appendLine(other *Line) {
	l.runes = append(l.runes, other.runes...)
	l.invalidate()
}

// invalidate drops the cached rendered width.
func (l *Line) invalidate() {
	l.width = -1
}

// RenderWidth returns the width of the line in screen cells with tabs
// expanded to the given stop width. The result is cached until the line
// changes or a different tab width is requested.
func (l *Line) RenderWidth(tabWidth int) int {
	if l.width >= 0 && l.widthTab == tabWidth {
		return l.width
	}
	l.width = l.RenderCol(len(l.runes), tabWidth)
	l.widthTab = tabWidth
	return l.width
}

// RenderCol converts a logical column to a render column, accounting for
// tab stops and double-width runes.
func (l *Line) RenderCol(col, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	rc := 0
	for i := 0; i < col && i < len(l.runes); i++ {
		if l.runes[i] == '\t' {
			rc += tabWidth - rc%tabWidth
		} else {
			rc += runewidth.RuneWidth(l.runes[i])
		}
	}
	return rc
}
