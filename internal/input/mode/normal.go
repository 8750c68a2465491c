package mode

import (
	"github.com/scribeedit/scribe/internal/engine/cursor"
	"github.com/scribeedit/scribe/internal/input/key"
)

// Normal is the default mode: keys run commands instead of inserting
// text. Unbound keys are ignored.
type Normal struct {
	bindings map[string]Command
}

// NewNormal creates the normal mode with its default bindings.
func NewNormal() *Normal {
	n := &Normal{}
	n.bindings = map[string]Command{
		"h":     moveCommand(cursor.Left),
		"j":     moveCommand(cursor.Down),
		"k":     moveCommand(cursor.Up),
		"l":     moveCommand(cursor.Right),
		"Left":  moveCommand(cursor.Left),
		"Down":  moveCommand(cursor.Down),
		"Up":    moveCommand(cursor.Up),
		"Right": moveCommand(cursor.Right),

		"w": moveCommand(cursor.WordForward),
		"b": moveCommand(cursor.WordBackward),

		"0":    moveCommand(cursor.LineStart),
		"$":    moveCommand(cursor.LineEnd),
		"Home": moveCommand(cursor.LineStart),
		"End":  moveCommand(cursor.LineEnd),

		"g": moveCommand(cursor.FileStart),
		"G": moveCommand(cursor.FileEnd),

		"PgUp": pageCommand(-1),
		"PgDn": pageCommand(1),

		"x": func(ed Editor) error {
			ed.Engine().DeleteUnderCursor()
			return nil
		},

		"i": func(ed Editor) error {
			return ed.Switch(ModeInsert)
		},
		"o": func(ed Editor) error {
			ed.Engine().OpenLineBelow()
			return ed.Switch(ModeInsert)
		},

		"/":   startSearch,
		"C-f": startSearch,
		"n":   nextMatch(1),
		"N":   nextMatch(-1),

		"C-g": func(ed Editor) error {
			return ed.Switch(ModeGotoLine)
		},

		"C-s": func(ed Editor) error {
			if err := ed.Save(); err != nil {
				ed.Message("save failed: %v", err)
			}
			return nil
		},
		"C-q": func(ed Editor) error {
			ed.Quit()
			return nil
		},
	}
	return n
}

func (n *Normal) Name() string             { return ModeNormal }
func (n *Normal) DisplayName() string      { return "NORMAL" }
func (n *Normal) CursorStyle() CursorStyle { return CursorBlock }

func (n *Normal) Enter(ed Editor) {}
func (n *Normal) Exit(ed Editor)  {}

// HandleKey looks the event up in the binding table.
func (n *Normal) HandleKey(ed Editor, ev key.Event) error {
	cmd, ok := n.bindings[ev.String()]
	if !ok {
		return nil
	}
	return cmd(ed)
}

// Bind adds or replaces a binding. Used by configuration.
func (n *Normal) Bind(chord string, cmd Command) {
	n.bindings[chord] = cmd
}

// moveCommand wraps a cursor movement as a command.
func moveCommand(dir cursor.Direction) Command {
	return func(ed Editor) error {
		ed.Engine().Move(dir)
		return nil
	}
}

// pageCommand moves the cursor a full window height up or down.
func pageCommand(sign int) Command {
	return func(ed Editor) error {
		eng := ed.Engine()
		cur := eng.Cursor()
		step := ed.Viewport().Height()
		eng.SetCursor(cur.Row+sign*step, cur.Col)
		return nil
	}
}

func startSearch(ed Editor) error {
	return ed.Switch(ModeSearch)
}

// nextMatch cycles through the results of the last accepted search
// without rescanning the buffer.
func nextMatch(sign int) Command {
	return func(ed Editor) error {
		st := ed.Search()
		if st == nil || st.Empty() {
			ed.Message("no previous search")
			return nil
		}
		if sign > 0 {
			st.Next()
		} else {
			st.Prev()
		}
		m := st.CurrentMatch()
		ed.Engine().SetCursor(m.Row, m.Col)
		return nil
	}
}
