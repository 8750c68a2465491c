package mode

import (
	"strconv"

	"github.com/scribeedit/scribe/internal/input/key"
)

// GotoLine is the line-number prompt. Digits accumulate; Enter jumps
// to the 1-indexed line, clamped to the document; Escape cancels.
type GotoLine struct {
	digits []rune
}

// NewGotoLine creates the go-to-line mode.
func NewGotoLine() *GotoLine {
	return &GotoLine{}
}

func (g *GotoLine) Name() string             { return ModeGotoLine }
func (g *GotoLine) DisplayName() string      { return "GOTO" }
func (g *GotoLine) CursorStyle() CursorStyle { return CursorUnderline }

func (g *GotoLine) Enter(ed Editor) {
	g.digits = g.digits[:0]
	g.prompt(ed)
}

func (g *GotoLine) Exit(ed Editor) {}

func (g *GotoLine) HandleKey(ed Editor, ev key.Event) error {
	switch {
	case ev.String() == "C-q":
		ed.Message("")
		if err := ed.Switch(ModeNormal); err != nil {
			return err
		}
		ed.Quit()

	case ev.Key == key.KeyEscape:
		ed.Message("")
		return ed.Switch(ModeNormal)

	case ev.Key == key.KeyEnter:
		g.jump(ed)
		return ed.Switch(ModeNormal)

	case ev.Key == key.KeyBackspace:
		if len(g.digits) > 0 {
			g.digits = g.digits[:len(g.digits)-1]
		}
		g.prompt(ed)

	case ev.IsDigit():
		g.digits = append(g.digits, ev.Rune)
		g.prompt(ed)
	}

	return nil
}

func (g *GotoLine) jump(ed Editor) {
	ed.Message("")
	if len(g.digits) == 0 {
		return
	}
	n, err := strconv.Atoi(string(g.digits))
	if err != nil {
		return
	}
	// GotoLine clamps, so out-of-range input lands on the last line.
	ed.Engine().GotoLine(n - 1)
}

func (g *GotoLine) prompt(ed Editor) {
	ed.Message(":%s", string(g.digits))
}
