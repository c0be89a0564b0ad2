// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/ThomWright/color-nope/cmd/check"
	"github.com/ThomWright/color-nope/cmd/show"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		check.CheckCmd,
		show.ShowCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "colornope",
	Description: `Colornope decides whether a command-line program should write colored
output. It combines the terminal type, the NO_COLOR convention and explicit
overrides with per-stream terminal detection, and exposes the result both as
a Go library and through this diagnostic CLI.`,
	Usage:     "colornope check --stream stderr",
	Copyright: "Copyright (c) Thom Wright 2026. All rights reserved.",
	Authors: []any{
		"Thom Wright (ThomWright)",
	},
	EnableShellCompletion: true,
}
