// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package colornope

import "os"

// Stream identifies the output stream a color decision applies to.
type Stream int

const (
	// Stdout is the standard output stream.
	Stdout Stream = iota
	// Stderr is the standard error stream.
	Stderr
)

// String implements fmt.Stringer.
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// file returns the process file backing the stream, read at call time so
// that test seams on os.Stdout/os.Stderr are honored. Values outside the
// enum map to nil.
func (s Stream) file() *os.File {
	switch s {
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}

// Override is an explicit, highest-priority instruction to the color
// decision. The zero value means no override.
type Override int

const (
	// NoOverride leaves the decision to the environment.
	NoOverride Override = iota
	// ForceOn enables color regardless of the environment.
	ForceOn
	// ForceOff disables color regardless of the environment.
	ForceOff
)

// String implements fmt.Stringer.
func (o Override) String() string {
	switch o {
	case ForceOn:
		return "force-on"
	case ForceOff:
		return "force-off"
	default:
		return "none"
	}
}
