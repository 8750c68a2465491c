package mode

import (
	"fmt"
	"testing"

	"github.com/scribeedit/scribe/internal/engine"
	"github.com/scribeedit/scribe/internal/input/key"
	"github.com/scribeedit/scribe/internal/renderer/viewport"
	"github.com/scribeedit/scribe/internal/search"
)

// fakeEditor implements Editor for mode tests.
type fakeEditor struct {
	eng     *engine.Engine
	vp      *viewport.Viewport
	mgr     *Manager
	st      *search.State
	message string
	saved   int
	quits   int
	saveErr error
}

func newFakeEditor(lines ...string) *fakeEditor {
	ed := &fakeEditor{
		eng: engine.NewFromLines(lines),
		vp:  viewport.New(80, 24),
		mgr: NewManager(),
	}
	ed.mgr.Register(NewNormal())
	ed.mgr.Register(NewInsert())
	ed.mgr.Register(NewSearch())
	ed.mgr.Register(NewGotoLine())
	if err := ed.mgr.Switch(ed, ModeNormal); err != nil {
		panic(err)
	}
	return ed
}

func (f *fakeEditor) Engine() *engine.Engine        { return f.eng }
func (f *fakeEditor) Viewport() *viewport.Viewport  { return f.vp }
func (f *fakeEditor) Switch(name string) error      { return f.mgr.Switch(f, name) }
func (f *fakeEditor) Save() error                   { f.saved++; return f.saveErr }
func (f *fakeEditor) Quit()                         { f.quits++ }
func (f *fakeEditor) SetSearch(st *search.State)    { f.st = st }
func (f *fakeEditor) Search() *search.State         { return f.st }
func (f *fakeEditor) Message(format string, args ...any) {
	f.message = fmt.Sprintf(format, args...)
}

// tap sends one key through the manager.
func (f *fakeEditor) tap(t *testing.T, ev key.Event) {
	t.Helper()
	if err := f.mgr.HandleKey(f, ev); err != nil {
		t.Fatalf("HandleKey(%v): %v", ev, err)
	}
}

func (f *fakeEditor) typeRunes(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		f.tap(t, key.NewRuneEvent(r, 0))
	}
}

func TestManagerSwitchUnknown(t *testing.T) {
	ed := newFakeEditor("a")
	if err := ed.Switch("no-such-mode"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if ed.mgr.CurrentName() != ModeNormal {
		t.Errorf("mode changed on failed switch: %s", ed.mgr.CurrentName())
	}
}

func TestNormalMovement(t *testing.T) {
	ed := newFakeEditor("alpha", "beta", "gamma")

	ed.typeRunes(t, "jj")
	if ed.eng.Cursor().Row != 2 {
		t.Errorf("expected row 2, got %d", ed.eng.Cursor().Row)
	}
	ed.typeRunes(t, "llk")
	if ed.eng.Cursor().Row != 1 || ed.eng.Cursor().Col != 2 {
		t.Errorf("expected (1,2), got (%d,%d)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
	ed.typeRunes(t, "$")
	if ed.eng.Cursor().Col != 4 {
		t.Errorf("expected end of 'beta', got col %d", ed.eng.Cursor().Col)
	}
	ed.typeRunes(t, "0")
	if ed.eng.Cursor().Col != 0 {
		t.Errorf("expected line start, got col %d", ed.eng.Cursor().Col)
	}
	ed.typeRunes(t, "G")
	if ed.eng.Cursor().Row != 2 {
		t.Errorf("G: expected last row, got %d", ed.eng.Cursor().Row)
	}
	ed.typeRunes(t, "g")
	if ed.eng.Cursor().Row != 0 {
		t.Errorf("g: expected first row, got %d", ed.eng.Cursor().Row)
	}
}

func TestNormalPageMovement(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	ed := newFakeEditor(lines...)

	ed.tap(t, key.NewSpecialEvent(key.KeyPageDown, 0))
	if ed.eng.Cursor().Row != 24 {
		t.Errorf("PgDn: expected row 24, got %d", ed.eng.Cursor().Row)
	}
	ed.tap(t, key.NewSpecialEvent(key.KeyPageUp, 0))
	if ed.eng.Cursor().Row != 0 {
		t.Errorf("PgUp: expected row 0, got %d", ed.eng.Cursor().Row)
	}
}

func TestNormalDeleteUnderCursor(t *testing.T) {
	ed := newFakeEditor("abc")
	ed.typeRunes(t, "x")
	if got := ed.eng.Buffer().Line(0).String(); got != "bc" {
		t.Errorf("expected \"bc\", got %q", got)
	}
}

func TestNormalUnboundKeyIgnored(t *testing.T) {
	ed := newFakeEditor("abc")
	ed.typeRunes(t, "Q")
	if got := ed.eng.Buffer().Line(0).String(); got != "abc" {
		t.Errorf("unbound key mutated buffer: %q", got)
	}
	if ed.mgr.CurrentName() != ModeNormal {
		t.Errorf("unbound key changed mode: %s", ed.mgr.CurrentName())
	}
}

func TestInsertRoundTrip(t *testing.T) {
	ed := newFakeEditor("")

	ed.typeRunes(t, "i")
	if ed.mgr.CurrentName() != ModeInsert {
		t.Fatalf("expected insert mode, got %s", ed.mgr.CurrentName())
	}

	ed.typeRunes(t, "hi")
	ed.tap(t, key.NewSpecialEvent(key.KeyEnter, 0))
	ed.typeRunes(t, "there")
	ed.tap(t, key.NewSpecialEvent(key.KeyEscape, 0))

	if ed.mgr.CurrentName() != ModeNormal {
		t.Errorf("expected normal mode after Escape, got %s", ed.mgr.CurrentName())
	}
	if got := ed.eng.Buffer().Text(); got != "hi\nthere" {
		t.Errorf("expected %q, got %q", "hi\nthere", got)
	}
}

func TestInsertBackspaceJoinsLines(t *testing.T) {
	ed := newFakeEditor("ab", "cd")
	ed.eng.SetCursor(1, 0)

	ed.typeRunes(t, "i")
	ed.tap(t, key.NewSpecialEvent(key.KeyBackspace, 0))

	if got := ed.eng.Buffer().Text(); got != "abcd" {
		t.Errorf("expected join, got %q", got)
	}
	if ed.eng.Cursor().Row != 0 || ed.eng.Cursor().Col != 2 {
		t.Errorf("cursor at (%d,%d), want (0,2)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
}

func TestOpenLineBelowEntersInsert(t *testing.T) {
	ed := newFakeEditor("one", "two")
	ed.typeRunes(t, "o")

	if ed.mgr.CurrentName() != ModeInsert {
		t.Errorf("expected insert mode, got %s", ed.mgr.CurrentName())
	}
	if ed.eng.Buffer().LineCount() != 3 || ed.eng.Cursor().Row != 1 {
		t.Errorf("expected new empty row 1, got %d lines cursor row %d",
			ed.eng.Buffer().LineCount(), ed.eng.Cursor().Row)
	}
}

func TestIncrementalSearchMovesCursor(t *testing.T) {
	ed := newFakeEditor("foo bar", "baz foo")

	ed.typeRunes(t, "/")
	if ed.mgr.CurrentName() != ModeSearch {
		t.Fatalf("expected search mode, got %s", ed.mgr.CurrentName())
	}
	ed.typeRunes(t, "ba")

	if ed.message != "/ba" {
		t.Errorf("expected prompt /ba, got %q", ed.message)
	}
	if ed.eng.Cursor().Row != 0 || ed.eng.Cursor().Col != 4 {
		t.Errorf("expected cursor at first match (0,4), got (%d,%d)",
			ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}

	ed.typeRunes(t, "z")
	if ed.eng.Cursor().Row != 1 || ed.eng.Cursor().Col != 0 {
		t.Errorf("expected cursor at (1,0) for \"baz\", got (%d,%d)",
			ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
}

func TestSearchArrowsCycleMatches(t *testing.T) {
	ed := newFakeEditor("foo bar foo", "foo again")

	ed.typeRunes(t, "/foo")
	if ed.eng.Cursor().Row != 0 || ed.eng.Cursor().Col != 0 {
		t.Fatalf("expected cursor at (0,0), got (%d,%d)",
			ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}

	ed.tap(t, key.NewSpecialEvent(key.KeyDown, 0))
	if ed.eng.Cursor().Row != 0 || ed.eng.Cursor().Col != 8 {
		t.Errorf("expected second match (0,8), got (%d,%d)",
			ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}

	ed.tap(t, key.NewSpecialEvent(key.KeyUp, 0))
	if ed.eng.Cursor().Row != 0 || ed.eng.Cursor().Col != 0 {
		t.Errorf("expected first match (0,0), got (%d,%d)",
			ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
}

func TestInsertEscapeStepsBack(t *testing.T) {
	ed := newFakeEditor("")

	ed.typeRunes(t, "i")
	ed.typeRunes(t, "ab")
	ed.tap(t, key.NewSpecialEvent(key.KeyEscape, 0))

	if ed.eng.Cursor().Col != 1 {
		t.Errorf("expected cursor on last typed rune (col 1), got %d", ed.eng.Cursor().Col)
	}
}

func TestSearchCancelRestoresCursorAndViewport(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	lines[90] = "needle here"
	ed := newFakeEditor(lines...)
	ed.eng.SetCursor(5, 3)
	ed.vp.ScrollToContain(5, 0)
	top := ed.vp.TopLine()

	ed.typeRunes(t, "/needle")
	ed.vp.ScrollToContain(ed.eng.Cursor().Row, 0)
	if ed.eng.Cursor().Row != 90 {
		t.Fatalf("expected jump to row 90, got %d", ed.eng.Cursor().Row)
	}

	ed.tap(t, key.NewSpecialEvent(key.KeyEscape, 0))

	if ed.eng.Cursor().Row != 5 || ed.eng.Cursor().Col != 3 {
		t.Errorf("cursor not restored: (%d,%d)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
	if ed.vp.TopLine() != top {
		t.Errorf("viewport not restored: top %d, want %d", ed.vp.TopLine(), top)
	}
	if ed.st != nil {
		t.Error("cancelled search left match overlay behind")
	}
}

func TestSearchCancelIsIdempotentOnBuffer(t *testing.T) {
	ed := newFakeEditor("foo bar foo")
	rev := ed.eng.Buffer().Revision()

	ed.typeRunes(t, "/foo")
	ed.tap(t, key.NewSpecialEvent(key.KeyEscape, 0))

	if ed.eng.Buffer().Revision() != rev {
		t.Error("search must not modify the buffer")
	}
}

func TestSearchAcceptEnablesCycling(t *testing.T) {
	ed := newFakeEditor("foo bar foo", "foo again")

	ed.typeRunes(t, "/foo")
	ed.tap(t, key.NewSpecialEvent(key.KeyEnter, 0))

	if ed.mgr.CurrentName() != ModeNormal {
		t.Fatalf("expected normal mode, got %s", ed.mgr.CurrentName())
	}
	if ed.st == nil || ed.st.Empty() {
		t.Fatal("accepted search lost its matches")
	}
	if ed.message != "3 matches" {
		t.Errorf("expected match count message, got %q", ed.message)
	}

	ed.typeRunes(t, "n")
	if ed.eng.Cursor().Row != 0 || ed.eng.Cursor().Col != 8 {
		t.Errorf("n: expected (0,8), got (%d,%d)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
	ed.typeRunes(t, "n")
	if ed.eng.Cursor().Row != 1 || ed.eng.Cursor().Col != 0 {
		t.Errorf("n: expected (1,0), got (%d,%d)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
	ed.typeRunes(t, "n")
	if ed.eng.Cursor().Row != 0 || ed.eng.Cursor().Col != 0 {
		t.Errorf("n: expected wrap to (0,0), got (%d,%d)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
	ed.typeRunes(t, "N")
	if ed.eng.Cursor().Row != 1 || ed.eng.Cursor().Col != 0 {
		t.Errorf("N: expected (1,0), got (%d,%d)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}
}

func TestSearchBackspaceRescans(t *testing.T) {
	ed := newFakeEditor("cat cart")

	ed.typeRunes(t, "/cart")
	if ed.eng.Cursor().Col != 4 {
		t.Fatalf("expected cursor at \"cart\", got col %d", ed.eng.Cursor().Col)
	}
	ed.tap(t, key.NewSpecialEvent(key.KeyBackspace, 0))
	ed.tap(t, key.NewSpecialEvent(key.KeyBackspace, 0))
	// Query is now "car"... backspaced to "car" then "ca": first match is "cat".
	if ed.eng.Cursor().Col != 0 {
		t.Errorf("expected cursor back at \"cat\", got col %d", ed.eng.Cursor().Col)
	}
}

func TestNextMatchWithoutSearch(t *testing.T) {
	ed := newFakeEditor("text")
	ed.typeRunes(t, "n")
	if ed.message != "no previous search" {
		t.Errorf("expected message, got %q", ed.message)
	}
}

func TestGotoLineJumpAndClamp(t *testing.T) {
	ed := newFakeEditor("a", "b", "c", "d", "e")

	ed.tap(t, key.NewRuneEvent('g', key.ModCtrl))
	if ed.mgr.CurrentName() != ModeGotoLine {
		t.Fatalf("expected goto-line mode, got %s", ed.mgr.CurrentName())
	}
	ed.typeRunes(t, "3")
	ed.tap(t, key.NewSpecialEvent(key.KeyEnter, 0))

	if ed.eng.Cursor().Row != 2 || ed.eng.Cursor().Col != 0 {
		t.Errorf("expected (2,0), got (%d,%d)", ed.eng.Cursor().Row, ed.eng.Cursor().Col)
	}

	// Out-of-range input clamps to the last line.
	ed.tap(t, key.NewRuneEvent('g', key.ModCtrl))
	ed.typeRunes(t, "12")
	ed.tap(t, key.NewSpecialEvent(key.KeyEnter, 0))

	if ed.eng.Cursor().Row != 4 {
		t.Errorf("expected clamp to row 4, got %d", ed.eng.Cursor().Row)
	}
}

func TestGotoLineEscapeCancels(t *testing.T) {
	ed := newFakeEditor("a", "b", "c")
	ed.eng.SetCursor(1, 0)

	ed.tap(t, key.NewRuneEvent('g', key.ModCtrl))
	ed.typeRunes(t, "3")
	ed.tap(t, key.NewSpecialEvent(key.KeyEscape, 0))

	if ed.eng.Cursor().Row != 1 {
		t.Errorf("cancelled goto moved the cursor to %d", ed.eng.Cursor().Row)
	}
}

func TestGotoLineIgnoresNonDigits(t *testing.T) {
	ed := newFakeEditor("a", "b", "c")

	ed.tap(t, key.NewRuneEvent('g', key.ModCtrl))
	ed.typeRunes(t, "x2y")
	ed.tap(t, key.NewSpecialEvent(key.KeyEnter, 0))

	if ed.eng.Cursor().Row != 1 {
		t.Errorf("expected row 1 from \"2\", got %d", ed.eng.Cursor().Row)
	}
}

func TestSaveAndQuitCommands(t *testing.T) {
	ed := newFakeEditor("x")

	ed.tap(t, key.NewRuneEvent('s', key.ModCtrl))
	if ed.saved != 1 {
		t.Errorf("expected one save, got %d", ed.saved)
	}

	ed.tap(t, key.NewRuneEvent('q', key.ModCtrl))
	if ed.quits != 1 {
		t.Errorf("expected one quit request, got %d", ed.quits)
	}
}

func TestSaveErrorReported(t *testing.T) {
	ed := newFakeEditor("x")
	ed.saveErr = fmt.Errorf("disk full")

	ed.tap(t, key.NewRuneEvent('s', key.ModCtrl))
	if ed.message != "save failed: disk full" {
		t.Errorf("unexpected message %q", ed.message)
	}
}
