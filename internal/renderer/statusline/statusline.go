// Package statusline renders the two chrome rows under the text area:
// the status bar and the message line.
package statusline

import (
	"fmt"

	"github.com/scribeedit/scribe/internal/renderer/backend"
	"github.com/scribeedit/scribe/internal/renderer/core"
)

// Info is everything the status bar displays.
type Info struct {
	// Filename is the document path, or "" for an unnamed document.
	Filename string

	// Modified reports unsaved changes.
	Modified bool

	// Language is the detected language name.
	Language string

	// Row and Col are the 0-indexed cursor position.
	Row, Col int

	// LineCount is the document length in lines.
	LineCount int

	// Mode is the active mode's display label.
	Mode string
}

// StatusLine draws the status bar and message line.
type StatusLine struct {
	barStyle core.Style
	msgStyle core.Style
}

// New creates a status line with reverse-video bar styling.
func New() *StatusLine {
	return &StatusLine{
		barStyle: core.DefaultStyle().Reverse(),
		msgStyle: core.DefaultStyle(),
	}
}

// DrawBar renders the status bar onto row y. The left side shows the
// file name, modified marker and language; the mode and cursor position
// are right-aligned.
func (s *StatusLine) DrawBar(sb *backend.ScreenBuffer, y int, info Info) {
	width, _ := sb.Size()
	sb.Fill(core.ScreenRect{Left: 0, Top: y, Right: width, Bottom: y + 1},
		core.NewCell(' ', s.barStyle))

	name := info.Filename
	if name == "" {
		name = "[No Name]"
	}
	left := " " + name
	if info.Modified {
		left += " [+]"
	}
	if info.Language != "" && info.Language != "plain" {
		left += "  " + info.Language
	}

	right := fmt.Sprintf("%s  %d/%d:%d ", info.Mode, info.Row+1, info.LineCount, info.Col+1)

	sb.SetString(0, y, truncate(left, width), s.barStyle)
	if start := width - len([]rune(right)); start > len([]rune(left)) {
		sb.SetString(start, y, right, s.barStyle)
	}
}

// DrawMessage renders the message line onto row y. Prompts ("/query",
// ":12") and notices share this row.
func (s *StatusLine) DrawMessage(sb *backend.ScreenBuffer, y int, message string) {
	width, _ := sb.Size()
	sb.Fill(core.ScreenRect{Left: 0, Top: y, Right: width, Bottom: y + 1},
		core.EmptyCell())
	sb.SetString(0, y, truncate(message, width), s.msgStyle)
}

// truncate cuts a string to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
