// Package app wires the editor together: one buffer, one window, a
// modal input layer and a renderer, driven by a single-threaded event
// loop.
package app

import (
	"errors"
	"fmt"

	"github.com/scribeedit/scribe/internal/config"
	"github.com/scribeedit/scribe/internal/engine"
	"github.com/scribeedit/scribe/internal/engine/buffer"
	"github.com/scribeedit/scribe/internal/fileio"
	"github.com/scribeedit/scribe/internal/input/mode"
	"github.com/scribeedit/scribe/internal/renderer"
	"github.com/scribeedit/scribe/internal/renderer/backend"
	"github.com/scribeedit/scribe/internal/renderer/highlight"
	"github.com/scribeedit/scribe/internal/renderer/statusline"
	"github.com/scribeedit/scribe/internal/renderer/viewport"
	"github.com/scribeedit/scribe/internal/search"
)

// Sentinel errors for save failures the message line reports verbatim.
var (
	ErrReadOnly   = errors.New("buffer is read-only")
	ErrNoFileName = errors.New("no file name")
)

const helpMessage = "Ctrl-F: find | Ctrl-G: go to line | Ctrl-S: save | Ctrl-Q: quit"

// Application owns all editor state. It implements mode.Editor, so the
// input modes act on it directly.
type Application struct {
	cfg     config.Config
	cfgPath string
	log     *Logger

	be   backend.Backend
	rend *renderer.Renderer
	vp   *viewport.Viewport

	eng *engine.Engine
	hl  *highlight.Source

	modes   *mode.Manager
	matches *search.State

	filename string
	readOnly bool
	message  string

	quitting  bool
	quitArmed bool

	watcher *config.Watcher
}

// Option configures an Application.
type Option func(*Application)

// WithConfigPath overrides the config file location.
func WithConfigPath(path string) Option {
	return func(a *Application) { a.cfgPath = path }
}

// WithLogger sets the logger. Defaults to a disabled logger.
func WithLogger(l *Logger) Option {
	return func(a *Application) { a.log = l }
}

// WithReadOnly blocks edits and saves.
func WithReadOnly() Option {
	return func(a *Application) { a.readOnly = true }
}

// WithBackend injects a backend; tests use the in-memory one. When
// absent, Run creates a real terminal.
func WithBackend(be backend.Backend) Option {
	return func(a *Application) { a.be = be }
}

// New builds an application editing the named file. An empty filename
// opens an unnamed scratch document.
func New(filename string, opts ...Option) (*Application, error) {
	app := &Application{
		cfgPath:  config.DefaultPath(),
		log:      NullLogger,
		filename: filename,
		message:  helpMessage,
	}
	for _, opt := range opts {
		opt(app)
	}

	cfg, err := config.Load(app.cfgPath)
	if err != nil {
		// Keep running on the defaults; the user sees why.
		app.log.Warn("config: %v", err)
		app.message = fmt.Sprintf("config error: %v", err)
	}
	app.cfg = cfg

	var lines []string
	if filename != "" {
		lines, err = fileio.Load(filename)
		if err != nil {
			return nil, err
		}
	}
	app.eng = engine.NewFromLines(lines, buffer.WithTabWidth(cfg.Editor.TabWidth))

	app.hl = highlight.NewSource(highlight.Detect(filename, []byte(app.eng.Buffer().Text())))

	app.vp = viewport.New(80, 24,
		viewport.WithScrollMargins(cfg.Editor.ScrollMarginVertical, cfg.Editor.ScrollMarginHorizontal))

	app.modes = mode.NewManager()
	normal := mode.NewNormal()
	if app.readOnly {
		for _, chord := range []string{"x", "o", "i"} {
			normal.Bind(chord, func(ed mode.Editor) error {
				ed.Message("%v", ErrReadOnly)
				return nil
			})
		}
	}
	app.modes.Register(normal)
	app.modes.Register(mode.NewInsert())
	app.modes.Register(mode.NewSearch())
	app.modes.Register(mode.NewGotoLine())
	if err := app.modes.Switch(app, mode.ModeNormal); err != nil {
		return nil, err
	}

	app.log.Info("opened %q (%d lines, language %s)",
		filename, app.eng.Buffer().LineCount(), app.hl.Language())

	return app, nil
}

// Engine returns the buffer and cursor pair.
func (app *Application) Engine() *engine.Engine { return app.eng }

// Viewport returns the visible window.
func (app *Application) Viewport() *viewport.Viewport { return app.vp }

// Switch changes the input mode.
func (app *Application) Switch(name string) error {
	return app.modes.Switch(app, name)
}

// Message replaces the message line.
func (app *Application) Message(format string, args ...any) {
	app.message = fmt.Sprintf(format, args...)
}

// SetSearch publishes search results for highlighting.
func (app *Application) SetSearch(st *search.State) {
	if st != nil {
		st.NoWrap = !app.cfg.Search.Wrap
	}
	app.matches = st
}

// Search returns the published search results.
func (app *Application) Search() *search.State { return app.matches }

// Save writes the buffer back to its file.
func (app *Application) Save() error {
	if app.readOnly {
		return ErrReadOnly
	}
	if app.filename == "" {
		return ErrNoFileName
	}

	buf := app.eng.Buffer()
	lines := make([]string, buf.LineCount())
	for i := range lines {
		lines[i] = buf.Line(i).String()
	}

	n, err := fileio.Save(app.filename, lines)
	if err != nil {
		app.log.Error("save %s: %v", app.filename, err)
		return err
	}

	buf.MarkSaved()
	app.log.Info("saved %s (%d bytes)", app.filename, n)
	app.Message("%d bytes written to %s", n, app.filename)
	return nil
}

// Quit requests shutdown. With unsaved changes the first request only
// arms a confirmation; a second consecutive request quits anyway.
func (app *Application) Quit() {
	if app.eng.Modified() && !app.quitArmed {
		app.quitArmed = true
		app.Message("unsaved changes! Ctrl-Q again to quit")
		return
	}
	app.quitting = true
}

// Quitting reports whether shutdown has been requested.
func (app *Application) Quitting() bool { return app.quitting }

// applyConfig applies a (re)loaded configuration to the live session.
func (app *Application) applyConfig(cfg config.Config) {
	app.cfg = cfg
	app.eng.Buffer().SetTabWidth(cfg.Editor.TabWidth)
	app.vp.SetScrollMargins(cfg.Editor.ScrollMarginVertical, cfg.Editor.ScrollMarginHorizontal)
	if app.matches != nil {
		app.matches.NoWrap = !cfg.Search.Wrap
	}
	if app.rend != nil {
		app.rend.SetTheme(highlight.ThemeByName(cfg.UI.Theme))
	}
}

// statusInfo assembles the status bar content.
func (app *Application) statusInfo() statusline.Info {
	cur := app.eng.Cursor()
	display := ""
	if m := app.modes.Current(); m != nil {
		display = m.DisplayName()
	}
	return statusline.Info{
		Filename:  app.filename,
		Modified:  app.eng.Modified(),
		Language:  app.hl.Language(),
		Row:       cur.Row,
		Col:       cur.Col,
		LineCount: app.eng.Buffer().LineCount(),
		Mode:      display,
	}
}

// cursorStyle maps the active mode's cursor request onto the backend.
func (app *Application) cursorStyle() backend.CursorStyle {
	m := app.modes.Current()
	if m == nil {
		return backend.CursorBlock
	}
	switch m.CursorStyle() {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}
