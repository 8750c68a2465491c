package buffer

import "fmt"

// Position is a logical location in the buffer: a 0-indexed row and a
// 0-indexed rune column. Column may equal the line length (cursor past
// the last rune).
type Position struct {
	Row int
	Col int
}

// String returns a human-readable form, 1-indexed as displayed to users.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

// Before reports whether p comes before other in document order.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Revision identifies a buffer state. It increments on every mutation,
// letting consumers (highlight cache, modified flag) detect change
// without diffing content.
type Revision uint64
