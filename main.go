// Released under an MIT license. See LICENSE.

/*
Jester is a small Lisp. Source text is read into a tree of shared slots
and evaluated against a single, flat environment:

	(defun sq (x) (* x x))
	(sq 5)

	(set x 10)
	(let (x 1 y 2) (+ x y))
	x

	(defmacro twice (x) (list x x))
	(twice (+ 1 2))

For more detail, run jester and enter --help.

Jester is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/engine"
	"github.com/michaelmacinnis/jester/internal/system/options"
	"github.com/michaelmacinnis/jester/internal/ui"
)

func main() {
	options.Parse()

	level := slog.LevelWarn
	if options.Debug() {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	e, err := engine.New(env.Logger(logger), env.Stdout(os.Stdout))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if options.Interactive() {
		ui.Run(e, os.Stdout, os.Stderr, options.Timed())

		return
	}

	if err := batch(e); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func batch(e *engine.T) error {
	if s := options.Expression(); s != "" {
		c, err := e.AddFromSource("command", s)
		if err != nil {
			return err
		}

		fmt.Println(e.Display(c))

		return nil
	}

	scripts := options.Scripts()
	if len(scripts) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}

		return timed("stdin", func() error {
			_, err := e.AddFromSource("stdin", string(b))

			return err
		})
	}

	for _, path := range scripts {
		err := timed(path, func() error {
			_, err := e.AddFromFile(path)

			return err
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func timed(label string, f func() error) error {
	start := time.Now()
	err := f()

	if options.Timed() {
		fmt.Fprintf(os.Stderr, "%s completed in: %v\n", label, time.Since(start))
	}

	return err
}
