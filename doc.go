// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package colornope decides whether a command-line program should write
// colored output. It implements the NO_COLOR convention
// (https://no-color.org/), following the Command Line Interface Guidelines
// (https://clig.dev/#output).
//
// Construct a ColorNope once per invocation, either from the real process
// environment with FromEnv or from explicit values with New, then ask it
// about the stream you are about to write to:
//
//	cn := colornope.FromEnv()
//	if cn.EnableColorFor(colornope.Stdout) {
//		// emit ANSI styling
//	}
//
// Color is enabled only when the target stream is an interactive terminal,
// the terminal kind permits it, and the user has not asked for it to be
// off via the NO_COLOR environment variable or a --no-color argument. An
// explicit ForceOn or ForceOff override outranks all of that, which lets a
// host honor flags like --color=always in pipelines.
package colornope
