package backend

import "github.com/scribeedit/scribe/internal/renderer/core"

// ScreenBuffer is a double buffer over a Backend. Frames are composed
// into the back buffer; Sync writes only the cells that differ from the
// front buffer, then flushes once.
type ScreenBuffer struct {
	width, height int
	front         [][]core.Cell
	back          [][]core.Cell
	fullRedraw    bool
}

// NewScreenBuffer creates a buffer for the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{
		width:      width,
		height:     height,
		fullRedraw: true,
	}
	sb.allocate()
	return sb
}

func (sb *ScreenBuffer) allocate() {
	sb.front = newCellGrid(sb.width, sb.height)
	sb.back = newCellGrid(sb.width, sb.height)
}

func newCellGrid(width, height int) [][]core.Cell {
	grid := make([][]core.Cell, height)
	for y := range grid {
		grid[y] = make([]core.Cell, width)
		for x := range grid[y] {
			grid[y][x] = core.EmptyCell()
		}
	}
	return grid
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// Resize reallocates both buffers and forces a full redraw on the next
// Sync.
func (sb *ScreenBuffer) Resize(width, height int) {
	if width == sb.width && height == sb.height {
		return
	}
	sb.width = width
	sb.height = height
	sb.allocate()
	sb.fullRedraw = true
}

// SetCell writes a cell into the back buffer. Out-of-range positions
// are ignored.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.back[y][x] = cell
}

// CellAt returns the back buffer cell at the given position.
func (sb *ScreenBuffer) CellAt(x, y int) core.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return core.EmptyCell()
	}
	return sb.back[y][x]
}

// SetString writes a string into the back buffer starting at (x, y).
// Wide runes occupy an extra cell; the continuation cell is written as
// a zero-width placeholder. Returns the column after the written text.
func (sb *ScreenBuffer) SetString(x, y int, s string, style core.Style) int {
	col := x
	for _, r := range s {
		if col >= sb.width {
			break
		}
		cell := core.NewCell(r, style)
		sb.SetCell(col, y, cell)
		if cell.Width == 2 && col+1 < sb.width {
			sb.SetCell(col+1, y, core.Cell{Rune: ' ', Width: 0, Style: style})
		}
		col += cell.Width
	}
	return col
}

// Fill fills a rectangle in the back buffer.
func (sb *ScreenBuffer) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom && y < sb.height; y++ {
		if y < 0 {
			continue
		}
		for x := rect.Left; x < rect.Right && x < sb.width; x++ {
			if x >= 0 {
				sb.back[y][x] = cell
			}
		}
	}
}

// Clear resets the back buffer to empty cells.
func (sb *ScreenBuffer) Clear() {
	empty := core.EmptyCell()
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			sb.back[y][x] = empty
		}
	}
}

// Sync writes changed cells to the backend and flushes. It returns the
// number of cells written.
func (sb *ScreenBuffer) Sync(b Backend) int {
	written := 0
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			cell := sb.back[y][x]
			if !sb.fullRedraw && cell.Equals(sb.front[y][x]) {
				continue
			}
			b.SetCell(x, y, cell)
			sb.front[y][x] = cell
			written++
		}
	}
	sb.fullRedraw = false
	b.Show()
	return written
}

// Invalidate forces every cell to be rewritten on the next Sync.
func (sb *ScreenBuffer) Invalidate() {
	sb.fullRedraw = true
}
