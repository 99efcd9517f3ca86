// Released under an MIT license. See LICENSE.

// Package options parses jester's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "jester 0.1.0"

//nolint:gochecknoglobals
var (
	debug       bool
	expression  string
	interactive bool
	scripts     []string
	timed       bool
	usage       = `jester

Usage:
  jester [-dt] SCRIPT...
  jester [-d] -c EXPRESSION
  jester [-dti]
  jester -h
  jester -v

Arguments:
  SCRIPT  Path to a jester script. Scripts share one environment.

Options:
  -c, --command=EXPRESSION  Evaluate the expression and print its value.
  -d, --debug               Trace evaluation on stderr.
  -i, --interactive         Invert interactive mode.
  -t, --time                Report how long each evaluation takes.
  -h, --help                Display this help.
  -v, --version             Print jester version.

If jester's stdin is a TTY, and jester was invoked with no scripts and no
expression, interactive mode is enabled. Otherwise, stdin is read to the
end and evaluated as a single program.
`
)

// Debug returns true if evaluation should be traced.
func Debug() bool {
	return debug
}

// Expression returns the expression passed with -c, if any.
func Expression() string {
	return expression
}

// Interactive returns true if jester should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses the command line. It exits after printing help or version.
func Parse() {
	parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

// Scripts returns the paths of the scripts to evaluate.
func Scripts() []string {
	return scripts
}

// Timed returns true if evaluation time should be reported.
func Timed() bool {
	return timed
}

func parse(argv []string, terminal bool) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	debug, _ = opts.Bool("--debug")
	expression, _ = opts.String("--command")
	scripts, _ = opts["SCRIPT"].([]string)
	timed, _ = opts.Bool("--time")

	interactive = terminal && expression == "" && len(scripts) == 0

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}
