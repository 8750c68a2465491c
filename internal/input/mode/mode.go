// Package mode implements the editor's modal input layer. Each mode
// interprets key events differently; transitions go through the
// Manager, which runs Exit and Enter hooks.
package mode

import (
	"errors"

	"github.com/scribeedit/scribe/internal/engine"
	"github.com/scribeedit/scribe/internal/input/key"
	"github.com/scribeedit/scribe/internal/renderer/viewport"
	"github.com/scribeedit/scribe/internal/search"
)

// Standard mode names.
const (
	ModeNormal   = "normal"
	ModeInsert   = "insert"
	ModeSearch   = "search"
	ModeGotoLine = "goto-line"
)

// ErrUnknownMode is returned when switching to an unregistered mode.
var ErrUnknownMode = errors.New("unknown mode")

// CursorStyle defines the cursor shape a mode requests.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor.
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Editor is the surface commands act on. The application session
// implements it; tests use a lightweight fake.
type Editor interface {
	// Engine returns the buffer and cursor pair being edited.
	Engine() *engine.Engine

	// Viewport returns the visible window, for page movement and for
	// restoring scroll position when a search is cancelled.
	Viewport() *viewport.Viewport

	// Switch changes the active mode.
	Switch(name string) error

	// Save writes the buffer to disk. The session reports success on
	// the message line itself; callers surface errors.
	Save() error

	// Quit requests shutdown. The session enforces the unsaved-changes
	// confirmation.
	Quit()

	// Message replaces the message line content.
	Message(format string, args ...any)

	// SetSearch publishes search results for highlighting. Passing nil
	// clears the overlay.
	SetSearch(st *search.State)

	// Search returns the published results, or nil.
	Search() *search.State
}

// Mode interprets key events while active.
type Mode interface {
	// Name returns the unique mode identifier.
	Name() string

	// DisplayName returns the status line label.
	DisplayName() string

	// CursorStyle returns the cursor shape for this mode.
	CursorStyle() CursorStyle

	// Enter is called when the mode becomes active.
	Enter(ed Editor)

	// Exit is called when the mode is left.
	Exit(ed Editor)

	// HandleKey processes one key event.
	HandleKey(ed Editor, ev key.Event) error
}

// Command is a single editor operation bound to a key.
type Command func(ed Editor) error
