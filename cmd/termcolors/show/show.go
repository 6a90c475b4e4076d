// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/termcolors"
	"github.com/urfave/cli/v3"
)

const (
	colorFlag = "color"

	modeAuto = "auto"
	modeOn   = "on"
	modeOff  = "off"
)

// ErrInvalidColorMode is returned when the color flag has an unknown value.
var ErrInvalidColorMode = fmt.Errorf("invalid color mode, expected auto, on or off")

// ShowCmd prints a swatch of every attribute and color sequence.
var ShowCmd = &cli.Command{
	Name:        "show",
	Description: "Print a swatch of every attribute and color in the table.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     colorFlag,
			Usage:    "Color mode: auto, on or off",
			Value:    modeAuto,
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	codes, err := codesForMode(cmd.String(colorFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return writeSwatch(cmd.Root().Writer, codes)
}

// codesForMode maps a --color flag value onto one of the three constructors.
func codesForMode(mode string) (termcolors.Codes, error) {
	switch mode {
	case modeAuto:
		return termcolors.Auto(), nil
	case modeOn:
		return termcolors.On(), nil
	case modeOff:
		return termcolors.Off(), nil
	default:
		return termcolors.Codes{}, fmt.Errorf("%w: %q", ErrInvalidColorMode, mode)
	}
}

type swatchEntry struct {
	name     string
	sequence string
}

func writeSwatch(w io.Writer, c termcolors.Codes) error {
	sections := []struct {
		title   string
		entries []swatchEntry
	}{
		{
			title: "attr",
			entries: []swatchEntry{
				{"reset", c.Attr.Reset},
				{"bold", c.Attr.Bold},
				{"italic", c.Attr.Italic},
				{"underline", c.Attr.Underline},
				{"blink", c.Attr.Blink},
				{"reverse", c.Attr.Reverse},
			},
		},
		{
			title:   "fg",
			entries: colorEntries(c.Fg),
		},
		{
			title:   "bg",
			entries: colorEntries(c.Bg),
		},
	}

	for _, section := range sections {
		if _, err := fmt.Fprintln(w, section.title); err != nil {
			return err
		}

		for _, entry := range section.entries {
			_, err := fmt.Fprintf(w, "  %s%-15s%s %q\n",
				entry.sequence, entry.name, c.Attr.Reset, entry.sequence)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func colorEntries(c termcolors.Colors) []swatchEntry {
	return []swatchEntry{
		{"black", c.Black},
		{"red", c.Red},
		{"green", c.Green},
		{"yellow", c.Yellow},
		{"blue", c.Blue},
		{"magenta", c.Magenta},
		{"cyan", c.Cyan},
		{"white", c.White},
		{"bright_black", c.BrightBlack},
		{"bright_red", c.BrightRed},
		{"bright_green", c.BrightGreen},
		{"bright_yellow", c.BrightYellow},
		{"bright_blue", c.BrightBlue},
		{"bright_magenta", c.BrightMagenta},
		{"bright_cyan", c.BrightCyan},
		{"bright_white", c.BrightWhite},
	}
}
