// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"fmt"

	"github.com/ThomWright/color-nope/cmd/colormode"
	"github.com/ThomWright/color-nope/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	streamFlag = "stream"
	quietFlag  = "quiet"
)

// CheckCmd reports whether color output is enabled for a stream via its
// exit status, so shell scripts can branch on the decision.
var CheckCmd = newCmd()

func newCmd() *cli.Command {
	return &cli.Command{
		Name: "check",
		Description: "Check whether color output is enabled for a stream.\n" +
			"Exits 0 when color is enabled, 1 when it is not, and 2 on usage errors.",
		Usage: "colornope check --stream stderr",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        streamFlag,
				Aliases:     []string{"s"},
				Usage:       "Stream to check: stdout or stderr",
				Value:       "stdout",
				DefaultText: "stdout",
			},
			&cli.BoolFlag{
				Name:    quietFlag,
				Aliases: []string{"q"},
				Usage:   "Suppress the verdict line",
			},
		}, colormode.Flags()...),
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	stream, err := colormode.ParseStream(cmd.String(streamFlag))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	decision, err := colormode.Decision(cmd.String(colormode.ColorFlagName), cmd.Bool(colormode.NoColorFlagName))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	enabled := decision.EnableColorFor(stream)

	kind, kindSet := decision.TerminalKind()
	_, noColorSet := decision.NoColorSignal()

	ctxlog.Debug(ctx, "color decision",
		"stream", stream.String(),
		"enabled", enabled,
		"term", kind,
		"term_set", kindSet,
		"no_color_set", noColorSet,
		"override", decision.Override().String(),
	)

	if !cmd.Bool(quietFlag) {
		verdict := "disabled"
		if enabled {
			verdict = "enabled"
		}

		// Subcommands do not inherit the root's Writer.
		fmt.Fprintf(cmd.Root().Writer, "color %s for %s\n", verdict, stream)
	}

	if !enabled {
		return cli.Exit("", 1)
	}

	return nil
}
