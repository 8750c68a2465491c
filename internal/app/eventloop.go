package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scribeedit/scribe/internal/config"
	"github.com/scribeedit/scribe/internal/input/key"
	"github.com/scribeedit/scribe/internal/renderer"
	"github.com/scribeedit/scribe/internal/renderer/backend"
	"github.com/scribeedit/scribe/internal/renderer/highlight"
)

// Wakeup tags for events posted into the queue from other goroutines.
const (
	reloadTag   = "config-reload"
	shutdownTag = "shutdown"
)

// Run takes over the terminal and processes events until quit. All
// state is touched from this goroutine only; the config watcher hands
// its events over through the backend's queue.
func (app *Application) Run() error {
	if app.be == nil {
		be, err := backend.NewTerminal()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		app.be = be
	}

	if err := app.be.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer app.be.Fini()

	app.rend = renderer.New(app.be, highlight.ThemeByName(app.cfg.UI.Theme))
	width, height := app.be.Size()
	app.resize(width, height)

	if app.cfgPath != "" {
		w, err := config.Watch(app.cfgPath, func(string) {
			app.be.PostWakeup(reloadTag)
		})
		if err != nil {
			app.log.Warn("config watcher: %v", err)
		} else {
			app.watcher = w
			defer app.watcher.Close()
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	loopDone := make(chan struct{})
	defer close(loopDone)
	go func() {
		select {
		case <-signals:
			app.be.PostWakeup(shutdownTag)
		case <-loopDone:
		}
	}()

	app.render()

	for !app.quitting {
		ev := app.be.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			app.handleKey(ev.Key)

		case backend.EventResize:
			app.resize(ev.Width, ev.Height)

		case backend.EventWakeup:
			switch ev.Tag {
			case reloadTag:
				app.reloadConfig()
			case shutdownTag:
				app.quitting = true
			}

		case backend.EventNone:
			// Backend is gone; nothing left to poll.
			return nil
		}

		app.render()
	}

	app.log.Info("shutting down")
	return nil
}

// handleKey dispatches one key to the active mode and maintains the
// quit confirmation arming.
func (app *Application) handleKey(ev key.Event) {
	wasArmed := app.quitArmed

	if err := app.modes.HandleKey(app, ev); err != nil {
		app.log.Error("handle %s: %v", ev, err)
		app.Message("%v", err)
	}

	// Any key that did not arm the confirmation itself disarms it.
	if wasArmed && app.quitArmed && !app.quitting {
		app.quitArmed = false
	}
}

// resize propagates a new terminal size to the renderer and viewport.
func (app *Application) resize(width, height int) {
	app.rend.Resize(width, height)

	cur := app.eng.Cursor()
	app.vp.Resize(width, app.rend.TextHeight(), cur.Row, app.cursorRenderCol())
}

// reloadConfig re-reads the config file after a watcher wakeup.
func (app *Application) reloadConfig() {
	cfg, err := config.Load(app.cfgPath)
	if err != nil {
		app.log.Warn("config reload: %v", err)
		app.Message("config reload failed: %v", err)
		return
	}
	app.applyConfig(cfg)
	app.log.Info("config reloaded from %s", app.cfgPath)
	app.Message("configuration reloaded")
}

// render scrolls the cursor into view and draws one frame.
func (app *Application) render() {
	cur := app.eng.Cursor()
	app.vp.ScrollToContain(cur.Row, app.cursorRenderCol())

	app.rend.Render(renderer.Frame{
		Buffer:      app.eng.Buffer(),
		Viewport:    app.vp,
		Highlights:  app.hl,
		Search:      app.matches,
		CursorRow:   cur.Row,
		CursorCol:   cur.Col,
		CursorStyle: app.cursorStyle(),
		Status:      app.statusInfo(),
		Message:     app.message,
		Welcome:     app.cfg.UI.Welcome,
	})
}

// cursorRenderCol is the cursor's column after tab expansion.
func (app *Application) cursorRenderCol() int {
	cur := app.eng.Cursor()
	buf := app.eng.Buffer()
	if cur.Row >= buf.LineCount() {
		return 0
	}
	return buf.Line(cur.Row).RenderCol(cur.Col, buf.TabWidth())
}
