// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package colornope

import "os"

// Environment variables and arguments recognized by FromEnv.
const (
	// TermEnvVar is the environment variable describing the terminal kind.
	TermEnvVar = "TERM"
	// NoColorEnvVar is the environment variable that disables color output
	// when present, regardless of its value. See https://no-color.org/.
	NoColorEnvVar = "NO_COLOR"
	// NoColorFlag is the command-line argument that disables color output.
	NoColorFlag = "--no-color"
)

// envValue is the raw value of an environment variable, distinguishing an
// unset variable from one set to the empty string.
type envValue struct {
	value string
	set   bool
}

// ColorNope decides whether color output should be enabled, based on the
// environment and the target stream.
//
// It is an immutable value: construct one per program invocation with New
// or FromEnv and query it with EnableColorFor. A shared instance is safe
// for concurrent use.
type ColorNope struct {
	term     envValue
	noColor  envValue
	override Override
}

// New creates a ColorNope from explicit values, without touching the
// process environment. nil marks an unset variable. The pointed-to
// strings are copied, so mutating them afterwards has no effect.
//
//   - termEnv is the TERM environment variable.
//   - noColorEnv is the NO_COLOR environment variable.
//   - override forces the decision either way, or NoOverride.
func New(termEnv, noColorEnv *string, override Override) ColorNope {
	return ColorNope{
		term:     envFromPtr(termEnv),
		noColor:  envFromPtr(noColorEnv),
		override: override,
	}
}

// FromEnv snapshots the TERM and NO_COLOR environment variables and the
// process argument list, exactly once, at call time. Later changes to the
// environment do not affect the returned value. An argument equal to
// NoColorFlag becomes a ForceOff override.
func FromEnv() ColorNope {
	return ColorNope{
		term:     envFromLookup(os.LookupEnv(TermEnvVar)),
		noColor:  envFromLookup(os.LookupEnv(NoColorEnvVar)),
		override: OverrideFromArgs(os.Args[1:]),
	}
}

// OverrideFromArgs scans command-line arguments (excluding the program
// name) for NoColorFlag and returns ForceOff when found, NoOverride
// otherwise. Only the exact token matches; values such as
// "--no-color=true" do not.
func OverrideFromArgs(args []string) Override {
	for _, a := range args {
		if a == NoColorFlag {
			return ForceOff
		}
	}

	return NoOverride
}

// WithOverride returns a copy of the value with the given override. The
// receiver is unchanged.
func (c ColorNope) WithOverride(override Override) ColorNope {
	c.override = override
	return c
}

// TerminalKind returns the snapshotted TERM value and whether it was set.
func (c ColorNope) TerminalKind() (string, bool) {
	return c.term.value, c.term.set
}

// NoColorSignal returns the snapshotted NO_COLOR value and whether it was
// set. The decision never inspects the value; only presence matters.
func (c ColorNope) NoColorSignal() (string, bool) {
	return c.noColor.value, c.noColor.set
}

// Override returns the override state the value was constructed with.
func (c ColorNope) Override() Override {
	return c.override
}

// EnableColorFor reports whether color output should be enabled for the
// target stream, consulting DefaultTTY for terminal detection.
//
// Pass the stream actually being written to: stdout may be redirected
// while stderr is still a terminal, or vice versa.
func (c ColorNope) EnableColorFor(stream Stream) bool {
	return c.EnableColorForTTY(DefaultTTY, stream)
}

// EnableColorForTTY is EnableColorFor with an explicit terminal-detection
// capability. The rules, in order of precedence:
//
//  1. A ForceOn or ForceOff override wins unconditionally; nothing else
//     is consulted, not even tty.
//  2. Otherwise color is enabled iff stream is an interactive terminal,
//     the terminal kind permits color, and NO_COLOR is absent. A present
//     NO_COLOR disables color whatever its value, including empty.
func (c ColorNope) EnableColorForTTY(tty TTY, stream Stream) bool {
	return c.decide(windowsStyleTerm, tty, stream)
}

// decide is the full decision, parameterized on the platform policy so
// both branches stay testable everywhere.
func (c ColorNope) decide(windows bool, tty TTY, stream Stream) bool {
	switch c.override {
	case ForceOn:
		return true
	case ForceOff:
		return false
	}

	return tty.IsTerminal(stream) &&
		termAllowsColor(windows, c.term) &&
		!c.noColor.set
}

func envFromPtr(v *string) envValue {
	if v == nil {
		return envValue{}
	}

	return envValue{value: *v, set: true}
}

func envFromLookup(value string, set bool) envValue {
	return envValue{value: value, set: set}
}
