// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package termcolors provides a preset table of ANSI terminal color and
// attribute escape sequences for use with the standard print functions.
// ANSI 16 colors and basic style attributes only.
//
// Auto returns the populated table when standard output is an interactive
// terminal and the NO_COLOR environment variable is absent; otherwise every
// field is the empty string, so colors are automatically suppressed during
// redirection or piping and callers never need to guard their output.
// On and Off enforce a specific behaviour, e.g. to implement a
// --color=on/off/auto argument.
//
// The table is laid out as three structs:
//
//	Codes
//	|-- Attr: Blink, Bold, Italic, Reset, Reverse, Underline
//	|-- Bg:   Black..White, BrightBlack..BrightWhite
//	`-- Fg:   Black..White, BrightBlack..BrightWhite
//
// Usage:
//
//	c := termcolors.Auto()
//	fmt.Printf("%sHello, 世界%s\n", c.Fg.Red, c.Attr.Reset)
//
// A Codes value is immutable after construction and safe to share between
// goroutines without synchronization.
package termcolors
