// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler that writes human-readable lines to
// stderr, coloring them only when the environment allows color there.
package ctxlog
