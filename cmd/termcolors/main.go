// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the termcolors command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/termcolors"
	"github.com/matt-FFFFFF/termcolors/cmd/termcolors/check"
	"github.com/matt-FFFFFF/termcolors/cmd/termcolors/show"
	"github.com/matt-FFFFFF/termcolors/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		check.CheckCmd,
		show.ShowCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "termcolors",
	Description: `Termcolors prints the ANSI 16-color and attribute escape sequence table
provided by the termcolors library. Output is automatically suppressed when
standard output is not an interactive terminal or when the NO_COLOR
environment variable is present; the --color flag maps onto the library's
auto, on and off constructors.`,
	Usage:     "termcolors show --color=auto",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", termcolors.Version, termcolors.Commit)

	if err := rootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
