// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package colornope

import (
	"io"

	"github.com/mattn/go-colorable"
)

// Writer returns the writer a program should use for stream, along with
// whether color is enabled for it.
//
// When color is enabled the writer renders ANSI escape sequences
// correctly on every platform, including legacy Windows consoles.
// When color is disabled the bare stream is returned; callers are
// expected to not emit escape sequences in that case. An unknown stream
// yields [io.Discard].
func (c ColorNope) Writer(stream Stream) (io.Writer, bool) {
	f := stream.file()
	if f == nil {
		return io.Discard, false
	}

	if !c.EnableColorFor(stream) {
		return f, false
	}

	return colorable.NewColorable(f), true
}
