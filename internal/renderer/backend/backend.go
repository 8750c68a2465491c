// Package backend abstracts the terminal behind a small drawing and
// event interface so the renderer can be tested without a TTY.
package backend

import (
	"github.com/scribeedit/scribe/internal/input/key"
	"github.com/scribeedit/scribe/internal/renderer/core"
)

// CursorStyle defines how the hardware cursor appears.
type CursorStyle int

// Cursor styles.
const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType identifies the kind of terminal event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventWakeup is a synthetic event posted into the queue from
	// another goroutine, carrying an opaque tag. The config watcher
	// uses it to request a reload on the event loop.
	EventWakeup
)

// Event is a terminal event delivered by PollEvent.
type Event struct {
	Type EventType

	// Key holds the decoded key press for EventKey.
	Key key.Event

	// Width and Height hold the new size for EventResize.
	Width, Height int

	// Tag identifies the source of an EventWakeup.
	Tag string
}

// Backend is the drawing and input surface the renderer targets.
// A Backend keeps no cell state of its own beyond what the terminal
// shows; change tracking lives in ScreenBuffer.
type Backend interface {
	// Init takes over the terminal. Must be called first.
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell writes a single cell. Out-of-range positions are ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear erases the whole screen with the default style.
	Clear()

	// Show flushes pending writes to the terminal.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor shape.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event arrives.
	PollEvent() Event

	// PostWakeup enqueues an EventWakeup with the given tag. Safe to
	// call from any goroutine.
	PostWakeup(tag string)

	// Beep rings the terminal bell.
	Beep()

	// HasTrueColor reports 24-bit color support.
	HasTrueColor() bool
}

// NullBackend is an in-memory Backend for tests. Drawn cells are
// retrievable and events are injected through a channel.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	showCount     int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Fini() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) Clear() {
	b.allocate()
}

func (b *NullBackend) Show() {
	b.showCount++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostWakeup(tag string) {
	b.PostEvent(Event{Type: EventWakeup, Tag: tag})
}

// PostEvent injects any event for tests. Drops the event if the queue
// is full rather than blocking.
func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

func (b *NullBackend) Beep() {}

func (b *NullBackend) HasTrueColor() bool { return true }

// CellAt returns the drawn cell for assertions.
func (b *NullBackend) CellAt(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// RowText returns the runes of a drawn row as a string, for assertions.
func (b *NullBackend) RowText(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		runes = append(runes, b.cells[y][x].Rune)
	}
	return string(runes)
}

// CursorPosition returns the cursor state for assertions.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// ShowCount returns how many times Show ran, for flush assertions.
func (b *NullBackend) ShowCount() int {
	return b.showCount
}

// SetSize changes the reported size and posts a resize event.
func (b *NullBackend) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
