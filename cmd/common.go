// Package cmd implements the tempconv command line interface.
package cmd

import (
	"io"
	"os"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/ansi"
)

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/lone-faerie/tempconv`

// CleanupFunc is run after the command completes.
type CleanupFunc func() error

var cleanup []CleanupFunc

// AddCleanup registers f to run after the command completes.
func AddCleanup(f CleanupFunc) {
	cleanup = append(cleanup, f)
}

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Execute runs the root command with the process arguments. Any error
// is printed to the error stream in the error color and returned as an
// *ExitError carrying the exit status.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	RootCommand.SetArgs(normalizeArgs(args))

	c, err := RootCommand.ExecuteC()

	for _, f := range cleanup {
		f()
	}
	cleanup = nil

	if err == nil {
		return nil
	}

	exit, ok := err.(*ExitError)
	if !ok {
		exit = &ExitError{err, 1}
	}

	msg := exit.Error()
	if colorEnabled(c.ErrOrStderr()) {
		msg = ansi.Wrap(ansi.Red, msg)
	}

	c.PrintErrf("\n%s\n", msg)

	return exit
}

// colorEnabled reports whether escape codes should be written to w.
// Only a real file can be a terminal in auto mode, so a redirected
// writer stays plain.
func colorEnabled(w io.Writer) bool {
	f, _ := w.(*os.File)
	return ansi.Enabled(f, resolveMode())
}

// resolveMode determines the color mode before the config is
// necessarily loaded, since help and parse errors can short-circuit
// setup. Invalid values fall back to auto.
func resolveMode() ansi.Mode {
	s := ColorMode

	if cfg != nil {
		s = cfg.Color
	} else if s == "" {
		s = os.Getenv(config.EnvColor)
	}

	mode, _ := ansi.ParseMode(s)

	return mode
}

// normalizeArgs moves the first operand that looks like a negative
// number behind a "--" terminator at the end of the argument list, so
// pflag does not treat it as a group of shorthand flags. Flags on
// either side of the value keep their meaning.
func normalizeArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}

		if isNegativeNumber(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, args[i+1:]...)
			out = append(out, "--", a)

			return out
		}
	}

	return args
}

func isNegativeNumber(s string) bool {
	return len(s) > 1 && s[0] == '-' && (s[1] == '.' || ('0' <= s[1] && s[1] <= '9'))
}
