// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/termcolors/internal/detect"
	"github.com/urfave/cli/v3"
)

// CheckCmd reports whether automatic detection would enable color output.
// It exits with status 1 when color is suppressed, so scripts can branch on it.
var CheckCmd = &cli.Command{
	Name:        "check",
	Description: "Report whether automatic color detection enables color output.",
	Action:      actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	if detect.ColorCapable() {
		_, err := fmt.Fprintln(cmd.Root().Writer, "color output enabled")
		return err
	}

	reason := "standard output is not a terminal"
	if detect.NoColor() {
		reason = detect.NoColorEnv + " is set"
	}

	return cli.Exit("color output disabled: "+reason, 1)
}
