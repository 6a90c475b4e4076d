// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package detect decides whether color output should be enabled.
// It combines two read-only environment signals: whether standard output is
// attached to an interactive terminal, and whether the NO_COLOR environment
// variable is present. NO_COLOR follows the https://no-color.org convention:
// presence alone disables color, the value is never inspected.
package detect
