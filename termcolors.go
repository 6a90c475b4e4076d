// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package termcolors

import (
	"github.com/matt-FFFFFF/termcolors/internal/detect"
)

// Attributes holds the terminal style attribute sequences.
type Attributes struct {
	Blink     string
	Bold      string
	Italic    string
	Reset     string
	Reverse   string
	Underline string
}

// Colors holds the sequences for the sixteen ANSI colors.
// The same type is used for foreground and background.
type Colors struct {
	Black   string
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string
	White   string

	BrightBlack   string
	BrightRed     string
	BrightGreen   string
	BrightYellow  string
	BrightBlue    string
	BrightMagenta string
	BrightCyan    string
	BrightWhite   string
}

// Codes aggregates all attribute and color sequences.
type Codes struct {
	Attr Attributes
	Bg   Colors
	Fg   Colors
}

// Auto returns On or Off depending on the environment.
//
// It returns On when standard output is attached to an interactive terminal
// and the NO_COLOR environment variable is absent, otherwise Off. A failing
// terminal probe counts as "not a terminal", so output degrades to plain text.
func Auto() Codes {
	if detect.ColorCapable() {
		return On()
	}

	return Off()
}

// On returns the table with every attribute and color sequence populated.
func On() Codes {
	return Codes{
		Attr: Attributes{
			Reset:     ControlString(Reset),
			Bold:      ControlString(Bold),
			Italic:    ControlString(Italic),
			Underline: ControlString(Underline),
			Blink:     ControlString(BlinkSlow),
			Reverse:   ControlString(ReverseVideo),
		},
		Bg: newColors(BgBlack, BgHiBlack),
		Fg: newColors(FgBlack, FgHiBlack),
	}
}

// Off returns the table with every field set to the empty string.
func Off() Codes {
	return Codes{}
}

// newColors populates a Colors value from the SGR codes starting at base and
// bright, keeping the base/bright variants aligned by construction.
func newColors(base, bright Code) Colors {
	return Colors{
		Black:   ControlString(base),
		Red:     ControlString(base + 1),
		Green:   ControlString(base + 2),
		Yellow:  ControlString(base + 3),
		Blue:    ControlString(base + 4),
		Magenta: ControlString(base + 5),
		Cyan:    ControlString(base + 6),
		White:   ControlString(base + 7),

		BrightBlack:   ControlString(bright),
		BrightRed:     ControlString(bright + 1),
		BrightGreen:   ControlString(bright + 2),
		BrightYellow:  ControlString(bright + 3),
		BrightBlue:    ControlString(bright + 4),
		BrightMagenta: ControlString(bright + 5),
		BrightCyan:    ControlString(bright + 6),
		BrightWhite:   ControlString(bright + 7),
	}
}
