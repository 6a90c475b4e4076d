// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler that formats messages in a
// human-readable way, taking its escape sequences from a termcolors.Codes
// table so output honours NO_COLOR and terminal detection.
package ctxlog
