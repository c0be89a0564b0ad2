// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the colornope command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	colornope "github.com/ThomWright/color-nope"
	"github.com/ThomWright/color-nope/cmd"
	"github.com/ThomWright/color-nope/internal/ctxlog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", colornope.Version, colornope.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
