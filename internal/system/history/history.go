// Released under an MIT license. See LICENSE.

// Package history persists the interactive history between sessions.
package history

import (
	"io"
	"os"
	"path/filepath"
)

// Load calls read with the contents of the history file.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := os.Open(Path())
	if err != nil {
		return err
	}
	defer f.Close()

	if err = lock(f, shared); err != nil {
		return err
	}

	_, err = read(f)

	return err
}

// Path returns the location of the history file. It can be overridden
// with JESTER_HISTORY.
func Path() string {
	if p := os.Getenv("JESTER_HISTORY"); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	return filepath.Join(home, ".jester_history")
}

// Save replaces the contents of the history file with what write writes.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(Path(), os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if err = lock(f, exclusive); err != nil {
		f.Close()

		return err
	}

	if err = f.Truncate(0); err != nil {
		f.Close()

		return err
	}

	if _, err = write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
