package mode

import (
	"github.com/scribeedit/scribe/internal/engine"
	"github.com/scribeedit/scribe/internal/input/key"
	"github.com/scribeedit/scribe/internal/search"
)

// Search is the incremental search prompt. Every keystroke rescans the
// buffer; Enter accepts the results for n/N cycling, Escape restores
// the cursor and scroll position from before the search.
type Search struct {
	query []rune

	savedPos  engine.Position
	savedTop  int
	savedLeft int
}

// NewSearch creates the search mode.
func NewSearch() *Search {
	return &Search{}
}

func (s *Search) Name() string             { return ModeSearch }
func (s *Search) DisplayName() string      { return "SEARCH" }
func (s *Search) CursorStyle() CursorStyle { return CursorUnderline }

func (s *Search) Enter(ed Editor) {
	cur := ed.Engine().Cursor()
	s.query = s.query[:0]
	s.savedPos = engine.Position{Row: cur.Row, Col: cur.Col}
	s.savedTop = ed.Viewport().TopLine()
	s.savedLeft = ed.Viewport().LeftColumn()
	s.prompt(ed)
}

func (s *Search) Exit(ed Editor) {}

func (s *Search) HandleKey(ed Editor, ev key.Event) error {
	switch {
	case ev.String() == "C-q":
		s.cancel(ed)
		if err := ed.Switch(ModeNormal); err != nil {
			return err
		}
		ed.Quit()

	case ev.Key == key.KeyEscape:
		s.cancel(ed)
		return ed.Switch(ModeNormal)

	case ev.Key == key.KeyEnter:
		s.accept(ed)
		return ed.Switch(ModeNormal)

	case ev.Key == key.KeyDown || ev.Key == key.KeyRight:
		s.step(ed, 1)

	case ev.Key == key.KeyUp || ev.Key == key.KeyLeft:
		s.step(ed, -1)

	case ev.Key == key.KeyBackspace:
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
		}
		s.rescan(ed)

	case ev.IsPrintable() && ev.Key == key.KeyRune:
		s.query = append(s.query, ev.Rune)
		s.rescan(ed)
	}

	return nil
}

// rescan recomputes matches for the current query and jumps to the
// first match at or after the position where the search began.
func (s *Search) rescan(ed Editor) {
	s.prompt(ed)

	if len(s.query) == 0 {
		ed.SetSearch(nil)
		ed.Engine().SetCursor(s.savedPos.Row, s.savedPos.Col)
		return
	}

	st := search.Scan(ed.Engine().Buffer(), string(s.query), s.savedPos)
	ed.SetSearch(st)

	if st.Empty() {
		ed.Engine().SetCursor(s.savedPos.Row, s.savedPos.Col)
		return
	}
	m := st.CurrentMatch()
	ed.Engine().SetCursor(m.Row, m.Col)
}

// step moves to the next or previous match without rescanning.
func (s *Search) step(ed Editor, dir int) {
	st := ed.Search()
	if st == nil || st.Empty() {
		return
	}
	if dir > 0 {
		st.Next()
	} else {
		st.Prev()
	}
	m := st.CurrentMatch()
	ed.Engine().SetCursor(m.Row, m.Col)
}

// accept keeps the match set for n/N. An empty or matchless query
// leaves no results behind.
func (s *Search) accept(ed Editor) {
	st := ed.Search()
	if st == nil || st.Empty() {
		ed.SetSearch(nil)
		ed.Message("")
		return
	}
	ed.Message("%d matches", len(st.Matches))
}

// cancel restores the cursor and scroll position and drops the results.
func (s *Search) cancel(ed Editor) {
	ed.SetSearch(nil)
	ed.Engine().SetCursor(s.savedPos.Row, s.savedPos.Col)
	ed.Viewport().SetOrigin(s.savedTop, s.savedLeft)
	ed.Message("")
}

func (s *Search) prompt(ed Editor) {
	ed.Message("/%s", string(s.query))
}
