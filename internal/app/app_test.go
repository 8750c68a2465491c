package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scribeedit/scribe/internal/input/key"
	"github.com/scribeedit/scribe/internal/renderer/backend"
)

func keyEvent(r rune, mods key.Modifier) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key.NewRuneEvent(r, mods)}
}

func specialEvent(k key.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key.NewSpecialEvent(k, 0)}
}

// script pre-posts events into a null backend; Run drains them and must
// quit before the queue empties.
func script(nb *backend.NullBackend, events ...backend.Event) {
	for _, ev := range events {
		nb.PostEvent(ev)
	}
}

func typeText(s string) []backend.Event {
	events := make([]backend.Event, 0, len(s))
	for _, r := range s {
		events = append(events, keyEvent(r, 0))
	}
	return events
}

func newTestApp(t *testing.T, filename string, opts ...Option) (*Application, *backend.NullBackend) {
	t.Helper()
	nb := backend.NewNullBackend(80, 24)
	opts = append(opts,
		WithBackend(nb),
		WithConfigPath(filepath.Join(t.TempDir(), "config.toml")),
	)
	app, err := New(filename, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return app, nb
}

func TestNewWithMissingFileIsEmptyDocument(t *testing.T) {
	app, _ := newTestApp(t, filepath.Join(t.TempDir(), "new.txt"))

	if app.Engine().Buffer().LineCount() != 1 {
		t.Errorf("expected single empty line, got %d lines", app.Engine().Buffer().LineCount())
	}
	if app.Engine().Modified() {
		t.Error("fresh document must not be modified")
	}
}

func TestInsertSaveQuitRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	app, nb := newTestApp(t, path)

	events := []backend.Event{keyEvent('i', 0)}
	events = append(events, typeText("hello")...)
	events = append(events,
		specialEvent(key.KeyEscape),
		keyEvent('s', key.ModCtrl),
		keyEvent('q', key.ModCtrl),
	)
	script(nb, events...)

	if err := app.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("expected %q on disk, got %q", "hello\n", data)
	}
	if !strings.Contains(app.message, "bytes written") {
		t.Errorf("expected save confirmation, got %q", app.message)
	}
}

func TestQuitConfirmationWithUnsavedChanges(t *testing.T) {
	app, nb := newTestApp(t, filepath.Join(t.TempDir(), "doc.txt"))

	script(nb,
		keyEvent('i', 0),
		keyEvent('a', 0),
		specialEvent(key.KeyEscape),
		keyEvent('q', key.ModCtrl), // arms the confirmation
		keyEvent('q', key.ModCtrl), // quits anyway
	)

	if err := app.Run(); err != nil {
		t.Fatal(err)
	}
	if !app.Quitting() {
		t.Error("expected quit after second Ctrl-Q")
	}
}

func TestInterveningKeyDisarmsQuit(t *testing.T) {
	app, nb := newTestApp(t, filepath.Join(t.TempDir(), "doc.txt"))

	script(nb,
		keyEvent('i', 0),
		keyEvent('a', 0),
		specialEvent(key.KeyEscape),
		keyEvent('q', key.ModCtrl),
		keyEvent('j', 0), // disarms
	)

	// Drain the script by hand; Run would block on the empty queue
	// because the quit was disarmed.
	app.be = nb
	for i := 0; i < 5; i++ {
		ev := nb.PollEvent()
		app.handleKey(ev.Key)
	}

	if app.quitArmed {
		t.Error("intervening key must disarm the quit confirmation")
	}
	if app.Quitting() {
		t.Error("disarmed session must keep running")
	}
}

func TestSaveWithoutFileName(t *testing.T) {
	app, nb := newTestApp(t, "")

	script(nb,
		keyEvent('s', key.ModCtrl),
		keyEvent('q', key.ModCtrl),
	)
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(app.message, ErrNoFileName.Error()) {
		t.Errorf("expected no-file-name message, got %q", app.message)
	}
}

func TestReadOnlyBlocksEditsAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	app, nb := newTestApp(t, path, WithReadOnly())

	script(nb,
		keyEvent('x', 0),
		keyEvent('i', 0),
		keyEvent('Z', 0), // would insert if mode had switched
		keyEvent('s', key.ModCtrl),
		keyEvent('q', key.ModCtrl),
	)
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}

	if got := app.Engine().Buffer().Text(); got != "content" {
		t.Errorf("read-only buffer changed: %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content\n" {
		t.Errorf("read-only file changed on disk: %q", data)
	}
}

func TestConfigReloadAppliesTabWidth(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[editor]\ntab_width = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	nb := backend.NewNullBackend(80, 24)
	app, err := New(filepath.Join(dir, "doc.txt"),
		WithBackend(nb), WithConfigPath(cfgPath))
	if err != nil {
		t.Fatal(err)
	}

	// Rewrite the config, then deliver the watcher's wakeup by hand.
	if err := os.WriteFile(cfgPath, []byte("[editor]\ntab_width = 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	script(nb,
		backend.Event{Type: backend.EventWakeup, Tag: reloadTag},
		keyEvent('q', key.ModCtrl),
	)

	if err := app.Run(); err != nil {
		t.Fatal(err)
	}

	if got := app.Engine().Buffer().TabWidth(); got != 8 {
		t.Errorf("expected reloaded tab width 8, got %d", got)
	}
	if app.message != "configuration reloaded" {
		t.Errorf("unexpected message %q", app.message)
	}
}

func TestResizeEventKeepsCursorVisible(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	app, nb := newTestApp(t, path)

	events := []backend.Event{keyEvent('G', 0)} // jump to last line
	events = append(events,
		backend.Event{Type: backend.EventResize, Width: 60, Height: 12},
		keyEvent('q', key.ModCtrl),
	)
	script(nb, events...)

	if err := app.Run(); err != nil {
		t.Fatal(err)
	}

	cur := app.Engine().Cursor()
	if !app.Viewport().Contains(cur.Row, 0) {
		t.Error("cursor left the viewport after resize")
	}
}

func TestStatusBarRendered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}

	app, nb := newTestApp(t, path)
	script(nb, keyEvent('q', key.ModCtrl))
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}

	bar := nb.RowText(22)
	if !strings.Contains(bar, "main.go") || !strings.Contains(bar, "NORMAL") {
		t.Errorf("status bar missing content: %q", bar)
	}
	if !strings.Contains(nb.RowText(23), "Ctrl-F: find") {
		t.Errorf("expected help message, got %q", nb.RowText(23))
	}
}
