// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for jester.
package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/reader"
	"github.com/michaelmacinnis/jester/internal/system/history"
	"github.com/peterh/liner"
)

const help = `Enter jester expressions to evaluate them. An expression may span lines.

Commands:
  --help  Display this help.
  --quit  Leave jester. So does end-of-file (Ctrl-D).
  --time  Report how long the last evaluation took.
`

// Evaluator is the interface for things that evaluate jester source.
type Evaluator interface {
	AddFromSource(label, text string) (cell.I, error)
	Display(c cell.I) string
}

// Prompter is satisfied by liner.State.
type Prompter interface {
	AppendHistory(item string)
	Prompt(prompt string) (string, error)
}

// Run launches the UI which sends expressions to the Evaluator.
func Run(e Evaluator, stdout, stderr io.Writer, timed bool) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stderr, "history:", err)
	}

	Loop(e, cli, stdout, stderr, timed)

	if err := history.Save(cli.WriteHistory); err != nil {
		fmt.Fprintln(stderr, "history:", err)
	}
}

// Loop reads, evaluates and prints until the user quits.
func Loop(e Evaluator, p Prompter, stdout, stderr io.Writer, timed bool) {
	var (
		buffer  []string
		elapsed time.Duration
	)

	for {
		prompt := ">> "
		if len(buffer) > 0 {
			prompt = ".. "
		}

		line, err := p.Prompt(prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			buffer = nil

			continue
		case err != nil:
			fmt.Fprintln(stdout)

			return
		}

		if len(buffer) == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case "--help":
				fmt.Fprint(stdout, help)

				continue
			case "--quit":
				return
			case "--time":
				fmt.Fprintf(stdout, "completed in: %v\n", elapsed)

				continue
			}
		}

		p.AppendHistory(line)

		buffer = append(buffer, line)

		text := strings.Join(buffer, "\n")
		if !reader.Complete(text) {
			continue
		}

		buffer = nil

		start := time.Now()
		c, err := evaluate(e, text)
		elapsed = time.Since(start)

		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
		} else {
			fmt.Fprintln(stdout, e.Display(c))
		}

		if timed {
			fmt.Fprintf(stderr, "completed in: %v\n", elapsed)
		}
	}
}

// evaluate turns a panic while evaluating text into an error so that the
// session can continue.
func evaluate(e Evaluator, text string) (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		case fmt.Stringer:
			err = errors.New(r.String())
		default:
			err = errors.New("unexpected error")
		}
	}()

	return e.AddFromSource("stdin", text)
}
