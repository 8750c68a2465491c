package mode

import (
	"github.com/scribeedit/scribe/internal/engine/cursor"
	"github.com/scribeedit/scribe/internal/input/key"
)

// Insert mode feeds printable keys into the buffer.
type Insert struct{}

// NewInsert creates the insert mode.
func NewInsert() *Insert {
	return &Insert{}
}

func (i *Insert) Name() string             { return ModeInsert }
func (i *Insert) DisplayName() string      { return "INSERT" }
func (i *Insert) CursorStyle() CursorStyle { return CursorBar }

func (i *Insert) Enter(ed Editor) {}
func (i *Insert) Exit(ed Editor)  {}

func (i *Insert) HandleKey(ed Editor, ev key.Event) error {
	eng := ed.Engine()

	switch {
	case ev.Key == key.KeyEscape:
		// Leaving insert steps back onto the last typed character,
		// vi style.
		if eng.Cursor().Col > 0 {
			eng.Move(cursor.Left)
		}
		return ed.Switch(ModeNormal)

	case ev.Key == key.KeyEnter:
		eng.NewlineAtCursor()

	case ev.Key == key.KeyBackspace:
		eng.Backspace()

	case ev.Key == key.KeyDelete:
		eng.DeleteUnderCursor()

	case ev.Key == key.KeyTab:
		eng.InsertRune('\t')

	case ev.Key == key.KeyLeft:
		eng.Move(cursor.Left)
	case ev.Key == key.KeyRight:
		eng.Move(cursor.Right)
	case ev.Key == key.KeyUp:
		eng.Move(cursor.Up)
	case ev.Key == key.KeyDown:
		eng.Move(cursor.Down)
	case ev.Key == key.KeyHome:
		eng.Move(cursor.LineStart)
	case ev.Key == key.KeyEnd:
		eng.Move(cursor.LineEnd)

	case ev.IsPrintable():
		eng.InsertRune(ev.Rune)
	}

	return nil
}
