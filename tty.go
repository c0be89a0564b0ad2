// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package colornope

import (
	"github.com/mattn/go-isatty"
)

// TTY reports whether a stream is attached to an interactive terminal.
//
// Implementations answer the capability question only; the color decision
// itself stays with [ColorNope]. Implementations must be safe for
// concurrent use.
type TTY interface {
	IsTerminal(stream Stream) bool
}

// TTYFunc adapts an ordinary function to the [TTY] interface.
type TTYFunc func(stream Stream) bool

// IsTerminal calls f(stream).
func (f TTYFunc) IsTerminal(stream Stream) bool {
	return f(stream)
}

// DefaultTTY inspects the process's real standard streams. It counts
// Cygwin/MSYS pseudo-terminals as interactive, which a plain
// file-descriptor check misses.
//
// [ColorNope.EnableColorFor] consults this variable, so swapping it out
// redirects every caller that doesn't inject its own capability.
var DefaultTTY TTY = deviceTTY{}

type deviceTTY struct{}

func (deviceTTY) IsTerminal(stream Stream) bool {
	f := stream.file()
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
