package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileIsEmptyDocument(t *testing.T) {
	lines, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if lines != nil {
		t.Errorf("expected nil lines, got %v", lines)
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\nc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lines, []string{"a", "b", "c"}) {
		t.Errorf("unexpected lines %v", lines)
	}
}

func TestLoadRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin")
	if err := os.WriteFile(path, []byte{'a', 0, 'b'}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrBinaryFile) {
		t.Errorf("expected ErrBinaryFile, got %v", err)
	}
}

func TestLoadNoTrailingEmptyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("only\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "only" {
		t.Errorf("unexpected lines %v", lines)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	n, err := Save(path, []string{"one", "two"})
	if err != nil {
		t.Fatal(err)
	}
	if n != len("one\ntwo\n") {
		t.Errorf("unexpected byte count %d", n)
	}

	lines, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lines, []string{"one", "two"}) {
		t.Errorf("round trip mismatch: %v", lines)
	}
}

func TestSaveEndsWithNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if _, err := Save(path, []string{"x"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "x\n" {
		t.Errorf("expected trailing newline, got %q", data)
	}
}

func TestSaveReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("old content\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Save(path, []string{"new"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Errorf("expected replacement, got %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("permissions not preserved: %v", info.Mode().Perm())
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if _, err := Save(path, []string{"x"}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the saved file, found %d entries", len(entries))
	}
}

func TestSaveErrorIncludesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")
	_, err := Save(path, []string{"x"})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	var fe *FileError
	if !errors.As(err, &fe) || fe.Path != path {
		t.Errorf("expected FileError with path, got %v", err)
	}
}
