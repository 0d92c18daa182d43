// Package tty answers whether the current process is attached to an
// interactive terminal. Settings resolution consumes it as a plain
// boolean-producing capability.
package tty

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdout is a terminal.
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
