package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/scribeedit/scribe/internal/input/key"
	"github.com/scribeedit/scribe/internal/renderer/core"
)

// Terminal implements Backend on top of tcell.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend. The terminal is not taken
// over until Init.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, encodeStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	switch style {
	case CursorUnderline:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return Event{Type: EventKey, Key: decodeKey(ev)}

		case *tcell.EventResize:
			w, h := ev.Size()
			t.screen.Sync()
			return Event{Type: EventResize, Width: w, Height: h}

		case *tcell.EventInterrupt:
			tag, _ := ev.Data().(string)
			return Event{Type: EventWakeup, Tag: tag}

		case nil:
			// Screen was finalized.
			return Event{Type: EventNone}
		}
	}
}

func (t *Terminal) PostWakeup(tag string) {
	// Best effort; the queue may be full.
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(tag))
}

func (t *Terminal) Beep() {
	_ = t.screen.Beep()
}

func (t *Terminal) HasTrueColor() bool {
	return t.screen.Colors() > 256
}

// decodeKey translates a tcell key event into the editor's key model.
// Control-letter chords arrive from tcell as dedicated key codes; they
// are folded back into a lowercase rune with the Ctrl modifier so the
// binding tables can express them uniformly.
func decodeKey(ev *tcell.EventKey) key.Event {
	mods := decodeMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: ev.Rune(), Modifiers: mods}
	case tcell.KeyEscape:
		return key.Event{Key: key.KeyEscape, Modifiers: mods}
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Modifiers: mods &^ key.ModCtrl}
	case tcell.KeyTab:
		return key.Event{Key: key.KeyTab, Modifiers: mods &^ key.ModCtrl}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Modifiers: mods &^ key.ModCtrl}
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Modifiers: mods}
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Modifiers: mods}
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Modifiers: mods}
	case tcell.KeyPgUp:
		return key.Event{Key: key.KeyPageUp, Modifiers: mods}
	case tcell.KeyPgDn:
		return key.Event{Key: key.KeyPageDown, Modifiers: mods}
	case tcell.KeyUp:
		return key.Event{Key: key.KeyUp, Modifiers: mods}
	case tcell.KeyDown:
		return key.Event{Key: key.KeyDown, Modifiers: mods}
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Modifiers: mods}
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Modifiers: mods}
	}

	// KeyEnter, KeyTab and KeyBackspace alias KeyCtrlM, KeyCtrlI and
	// KeyCtrlH, so only the remaining control chords reach this point.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + int(k) - int(tcell.KeyCtrlA))
		return key.Event{Key: key.KeyRune, Rune: r, Modifiers: mods.With(key.ModCtrl)}
	}

	return key.Event{Key: key.KeyNone, Modifiers: mods}
}

// decodeMods translates the tcell modifier mask.
func decodeMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}

// encodeStyle translates a display style into a tcell style.
func encodeStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attrs.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attrs.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attrs.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attrs.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}
