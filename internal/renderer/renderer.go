// Package renderer composes frames from the buffer, syntax spans and
// search matches, and writes them to the terminal through a diffing
// screen buffer.
package renderer

import (
	"github.com/scribeedit/scribe/internal/engine/buffer"
	"github.com/scribeedit/scribe/internal/renderer/backend"
	"github.com/scribeedit/scribe/internal/renderer/core"
	"github.com/scribeedit/scribe/internal/renderer/highlight"
	"github.com/scribeedit/scribe/internal/renderer/statusline"
	"github.com/scribeedit/scribe/internal/renderer/viewport"
	"github.com/scribeedit/scribe/internal/search"
)

// ChromeRows is the number of rows reserved under the text area for the
// status bar and the message line.
const ChromeRows = 2

// Frame is one complete description of what the screen should show.
type Frame struct {
	Buffer     *buffer.Buffer
	Viewport   *viewport.Viewport
	Highlights *highlight.Source
	Search     *search.State

	// CursorRow and CursorCol are the cursor position in rune columns.
	CursorRow, CursorCol int

	CursorStyle backend.CursorStyle

	Status  statusline.Info
	Message string

	// Welcome enables the centered banner for an empty unnamed
	// document.
	Welcome bool
}

// Renderer owns the screen buffer and the terminal backend.
type Renderer struct {
	be     backend.Backend
	screen *backend.ScreenBuffer
	status *statusline.StatusLine
	theme  *highlight.Theme

	lastCursorStyle backend.CursorStyle
	haveCursorStyle bool
}

// New creates a renderer for the given backend and theme.
func New(be backend.Backend, theme *highlight.Theme) *Renderer {
	w, h := be.Size()
	return &Renderer{
		be:     be,
		screen: backend.NewScreenBuffer(w, h),
		status: statusline.New(),
		theme:  theme,
	}
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(theme *highlight.Theme) {
	r.theme = theme
	r.screen.Invalidate()
}

// Resize adjusts the screen buffer to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// TextHeight returns the number of rows available for document text.
func (r *Renderer) TextHeight() int {
	_, h := r.screen.Size()
	if h <= ChromeRows {
		return 1
	}
	return h - ChromeRows
}

// Render composes the frame and flushes the changed cells.
func (r *Renderer) Render(f Frame) {
	width, height := r.screen.Size()
	textHeight := r.TextHeight()

	r.screen.Clear()

	for y := 0; y < textHeight; y++ {
		row := f.Viewport.TopLine() + y
		if row < f.Buffer.LineCount() {
			r.drawTextRow(y, row, f)
		} else {
			r.screen.SetString(0, y, "~", r.theme.StyleFor(highlight.Comment))
		}
	}

	if f.Welcome && documentIsPristine(f) {
		r.drawWelcome(width, textHeight)
	}

	if height > ChromeRows {
		r.status.DrawBar(r.screen, height-2, f.Status)
		r.status.DrawMessage(r.screen, height-1, f.Message)
	}

	r.placeCursor(f)
	r.screen.Sync(r.be)
}

// drawTextRow renders one buffer line into screen row y, expanding tabs
// and applying syntax and search styling per source rune.
func (r *Renderer) drawTextRow(y, row int, f Frame) {
	line := f.Buffer.Line(row)
	text := line.String()
	runes := []rune(text)
	cats := r.lineCategories(row, text, len(runes), f)

	width, _ := r.screen.Size()
	left := f.Viewport.LeftColumn()
	tabWidth := f.Buffer.TabWidth()

	rc := 0 // render column in buffer space
	for i, rn := range runes {
		style := r.theme.StyleFor(cats[i])

		if rn == '\t' {
			next := rc + tabWidth - rc%tabWidth
			for ; rc < next; rc++ {
				r.setTextCell(rc-left, y, ' ', style, width)
			}
			continue
		}

		w := core.RuneWidth(rn)
		if w == 0 {
			continue
		}
		r.setTextCell(rc-left, y, rn, style, width)
		if w == 2 {
			r.setZeroWidthCell(rc-left+1, y, style, width)
		}
		rc += w
	}
}

func (r *Renderer) setTextCell(x, y int, rn rune, style core.Style, width int) {
	if x < 0 || x >= width {
		return
	}
	r.screen.SetCell(x, y, core.NewCell(rn, style))
}

func (r *Renderer) setZeroWidthCell(x, y int, style core.Style, width int) {
	if x < 0 || x >= width {
		return
	}
	r.screen.SetCell(x, y, core.Cell{Rune: ' ', Width: 0, Style: style})
}

// lineCategories computes the per-rune category for a line: syntax
// spans first, then search matches layered on top.
func (r *Renderer) lineCategories(row int, text string, n int, f Frame) []highlight.Category {
	cats := make([]highlight.Category, n)
	for _, s := range f.Highlights.SpansFor(row, text) {
		for i := s.Start; i < s.End && i < n; i++ {
			cats[i] = s.Category
		}
	}

	if f.Search != nil && !f.Search.Empty() {
		qlen := len([]rune(f.Search.Query))
		current := f.Search.CurrentMatch()
		for _, m := range f.Search.Matches {
			if m.Row != row {
				continue
			}
			cat := highlight.Match
			if m == current {
				cat = highlight.MatchCurrent
			}
			for i := m.Col; i < m.Col+qlen && i < n; i++ {
				cats[i] = cat
			}
		}
	}

	return cats
}

// drawWelcome centers the banner a third of the way down the screen.
func (r *Renderer) drawWelcome(width, textHeight int) {
	banner := "scribe editor"
	help := "Ctrl-F: find | Ctrl-G: go to line | Ctrl-S: save | Ctrl-Q: quit"

	r.centerText(banner, textHeight/3, width, core.DefaultStyle().Bold())
	r.centerText(help, textHeight/3+2, width, r.theme.StyleFor(highlight.Comment))
}

func (r *Renderer) centerText(s string, y, width int, style core.Style) {
	if y < 0 || len(s) >= width {
		return
	}
	x := (width - len([]rune(s))) / 2
	// Keep the tilde visible in column 0.
	if x < 1 {
		x = 1
	}
	r.screen.SetString(x, y, s, style)
}

// placeCursor positions the hardware cursor, hiding it while scrolled
// out of view.
func (r *Renderer) placeCursor(f Frame) {
	row := f.CursorRow
	renderCol := 0
	if row < f.Buffer.LineCount() {
		renderCol = f.Buffer.Line(row).RenderCol(f.CursorCol, f.Buffer.TabWidth())
	}

	if !f.Viewport.Contains(row, renderCol) {
		r.be.HideCursor()
		return
	}

	x, y := f.Viewport.ScreenPosition(row, renderCol)
	if !r.haveCursorStyle || r.lastCursorStyle != f.CursorStyle {
		r.be.SetCursorStyle(f.CursorStyle)
		r.lastCursorStyle = f.CursorStyle
		r.haveCursorStyle = true
	}
	r.be.ShowCursor(x, y)
}

// documentIsPristine reports whether the banner may be shown: a single
// empty line, no file name, nothing typed yet.
func documentIsPristine(f Frame) bool {
	return f.Status.Filename == "" &&
		!f.Status.Modified &&
		f.Buffer.LineCount() == 1 &&
		f.Buffer.Line(0).Len() == 0
}
