// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// NoColorEnv is the environment variable that disables color output.
const NoColorEnv = "NO_COLOR"

var (
	// IsTTYFunc reports whether standard output is an interactive terminal.
	// It is a package variable so tests can stub it.
	IsTTYFunc = stdoutIsTTY

	// LookupEnvFunc looks up an environment variable.
	// It is a package variable so tests can stub it.
	LookupEnvFunc = os.LookupEnv
)

// ColorCapable reports whether color output should be enabled: standard
// output must be an interactive terminal and NO_COLOR must be absent.
func ColorCapable() bool {
	return IsTTYFunc() && !NoColor()
}

// NoColor reports whether the NO_COLOR environment variable is present.
// Any value, including the empty string, disables color.
func NoColor() bool {
	_, ok := LookupEnvFunc(NoColorEnv)
	return ok
}

// stdoutIsTTY probes the stdout file descriptor. A probe on an invalid or
// closed descriptor reports false, so callers fail safe toward plain output.
func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
