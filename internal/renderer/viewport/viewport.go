// Package viewport tracks which rectangle of the buffer is visible and
// keeps the cursor inside it with minimal scrolling.
package viewport

// Viewport is the visible window over the buffer. TopLine and LeftColumn
// are buffer coordinates; coordinates inside the window are obtained by
// subtracting them. Columns are measured in render columns, after tab
// expansion.
type Viewport struct {
	topLine    int
	leftColumn int

	width  int
	height int

	// Scroll margins keep the cursor this many rows or columns away
	// from the window edges while scrolling.
	marginVertical   int
	marginHorizontal int
}

// Option configures a Viewport.
type Option func(*Viewport)

// WithScrollMargins sets the vertical and horizontal scroll margins.
// Margins larger than half the window are reduced when scrolling so a
// small window still behaves sensibly.
func WithScrollMargins(vertical, horizontal int) Option {
	return func(v *Viewport) {
		if vertical < 0 {
			vertical = 0
		}
		if horizontal < 0 {
			horizontal = 0
		}
		v.marginVertical = vertical
		v.marginHorizontal = horizontal
	}
}

// New creates a viewport with the given size. Width and height are
// clamped to a minimum of 1.
func New(width, height int, opts ...Option) *Viewport {
	v := &Viewport{
		width:  max(width, 1),
		height: max(height, 1),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// TopLine returns the first visible buffer row.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible render column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// Width returns the window width in cells.
func (v *Viewport) Width() int { return v.width }

// Height returns the window height in rows.
func (v *Viewport) Height() int { return v.height }

// BottomLine returns the last visible buffer row (inclusive).
func (v *Viewport) BottomLine() int {
	return v.topLine + v.height - 1
}

// Contains reports whether the buffer position (row, renderCol) is
// inside the visible window.
func (v *Viewport) Contains(row, renderCol int) bool {
	return row >= v.topLine && row < v.topLine+v.height &&
		renderCol >= v.leftColumn && renderCol < v.leftColumn+v.width
}

// Resize updates the window size and re-establishes visibility of the
// given position. Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height, row, renderCol int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.ScrollToContain(row, renderCol)
}

// ScrollToContain adjusts TopLine and LeftColumn by the smallest amount
// that brings (row, renderCol) into view, honoring the scroll margins.
// If the position is already visible inside the margins, nothing moves.
func (v *Viewport) ScrollToContain(row, renderCol int) {
	mv := v.marginVertical
	if 2*mv >= v.height {
		mv = (v.height - 1) / 2
	}
	mh := v.marginHorizontal
	if 2*mh >= v.width {
		mh = (v.width - 1) / 2
	}

	if row < v.topLine+mv {
		v.topLine = max(row-mv, 0)
	} else if row > v.topLine+v.height-1-mv {
		v.topLine = row - v.height + 1 + mv
	}

	if renderCol < v.leftColumn+mh {
		v.leftColumn = max(renderCol-mh, 0)
	} else if renderCol > v.leftColumn+v.width-1-mh {
		v.leftColumn = renderCol - v.width + 1 + mh
	}
}

// SetScrollMargins updates the margins, for configuration reload.
func (v *Viewport) SetScrollMargins(vertical, horizontal int) {
	WithScrollMargins(vertical, horizontal)(v)
}

// SetOrigin restores a previously observed scroll position. Negative
// values clamp to zero.
func (v *Viewport) SetOrigin(topLine, leftColumn int) {
	v.topLine = max(topLine, 0)
	v.leftColumn = max(leftColumn, 0)
}

// ScreenPosition translates a buffer position into window coordinates.
// The caller must ensure the position is visible.
func (v *Viewport) ScreenPosition(row, renderCol int) (x, y int) {
	return renderCol - v.leftColumn, row - v.topLine
}
