// Package ansi provides the terminal escape codes used for colored
// output, and the policy deciding when they are emitted.
package ansi

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	Green = "\x1b[32m"
	Red   = "\x1b[31m"
	Cyan  = "\x1b[36m"
	Reset = "\x1b[0m"
)

// A Mode controls when escape codes are emitted.
type Mode byte

const (
	Auto Mode = iota
	Always
	Never
)

// ParseMode returns the Mode named by s, ignoring case. The empty
// string parses as Auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "always", "on", "true":
		return Always, nil
	case "never", "off", "false":
		return Never, nil
	}

	return Auto, fmt.Errorf("unknown color mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case Always:
		return "always"
	case Never:
		return "never"
	}

	return "auto"
}

// Enabled reports whether escape codes should be written to f under m.
// Always and Never are explicit requests and are honored as-is. In Auto
// mode color is only enabled when f is a terminal and $NO_COLOR is
// unset.
func Enabled(f *os.File, m Mode) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Wrap surrounds s with the given escape code and a reset.
func Wrap(code, s string) string {
	return code + s + Reset
}
