// Package fileio loads documents from disk and writes them back
// atomically.
package fileio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrBinaryFile indicates the file contains NUL bytes and cannot be
// edited as text.
var ErrBinaryFile = errors.New("binary file")

// FileError wraps a file operation failure with its path.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Load reads a document as lines. A missing file is not an error; it
// yields an empty document so the editor can create the file on save.
// CRLF line endings are normalized to LF.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return nil, &FileError{Op: "open", Path: path, Err: ErrBinaryFile}
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Save writes the document atomically: the content goes to a temporary
// file in the target directory, which then replaces the target by
// rename. A trailing newline is always written. Returns the number of
// bytes written.
func Save(path string, lines []string) (int, error) {
	content := strings.Join(lines, "\n") + "\n"

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, &FileError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	cleanup := func(err error) (int, error) {
		tmp.Close()
		os.Remove(tmpName)
		return 0, &FileError{Op: "save", Path: path, Err: err}
	}

	if _, err := tmp.WriteString(content); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, &FileError{Op: "save", Path: path, Err: err}
	}

	// Preserve the permissions of an existing target.
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, info.Mode().Perm())
	} else {
		_ = os.Chmod(tmpName, 0644)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return 0, &FileError{Op: "save", Path: path, Err: err}
	}

	return len(content), nil
}
