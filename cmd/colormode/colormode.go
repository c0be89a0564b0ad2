// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package colormode parses the color-selection flags shared by the CLI
// subcommands.
package colormode

import (
	"errors"
	"fmt"

	colornope "github.com/ThomWright/color-nope"
	"github.com/urfave/cli/v3"
)

const (
	// ColorFlagName is the tri-state color selection flag.
	ColorFlagName = "color"
	// NoColorFlagName disables color output; it wins over ColorFlagName.
	NoColorFlagName = "no-color"

	// ModeAuto decides from the environment and the stream.
	ModeAuto = "auto"
	// ModeAlways forces color on.
	ModeAlways = "always"
	// ModeNever forces color off.
	ModeNever = "never"
)

var (
	// ErrInvalidColorMode is returned when the color mode is not auto, always or never.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidStream is returned when the stream is not stdout or stderr.
	ErrInvalidStream = errors.New("invalid stream")
)

// Flags returns fresh definitions of the shared color flags. Each command
// needs its own instances, as flag state lives on the flag.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        ColorFlagName,
			Usage:       "When to color output: auto, always or never",
			Value:       ModeAuto,
			DefaultText: ModeAuto,
		},
		&cli.BoolFlag{
			Name:  NoColorFlagName,
			Usage: "Disable color output; equivalent to --color=never",
		},
	}
}

// Parse maps the shared flag values onto an override. --no-color wins
// over any --color value; auto means no override.
func Parse(mode string, noColor bool) (colornope.Override, error) {
	if noColor {
		return colornope.ForceOff, nil
	}

	switch mode {
	case ModeAuto, "":
		return colornope.NoOverride, nil
	case ModeAlways:
		return colornope.ForceOn, nil
	case ModeNever:
		return colornope.ForceOff, nil
	default:
		return colornope.NoOverride, fmt.Errorf("%w: %q", ErrInvalidColorMode, mode)
	}
}

// ParseStream maps a stream name onto a Stream.
func ParseStream(name string) (colornope.Stream, error) {
	switch name {
	case "stdout":
		return colornope.Stdout, nil
	case "stderr":
		return colornope.Stderr, nil
	default:
		return colornope.Stdout, fmt.Errorf("%w: %q", ErrInvalidStream, name)
	}
}

// Decision builds the color decision for an invocation: the environment
// snapshot with the parsed flag override applied on top. An explicit
// --color=always or --color=never beats NO_COLOR, which a bare
// environment snapshot would honor.
func Decision(mode string, noColor bool) (colornope.ColorNope, error) {
	override, err := Parse(mode, noColor)
	if err != nil {
		return colornope.ColorNope{}, err
	}

	decision := colornope.FromEnv()
	if override != colornope.NoOverride {
		decision = decision.WithOverride(override)
	}

	return decision, nil
}
