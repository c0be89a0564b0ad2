// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	colornope "github.com/ThomWright/color-nope"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// unsetenv removes key for the duration of the test, restoring the
// original value afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// stubInvocation pins down everything the command reads from the
// process: the argument list, the exit function and terminal detection.
func stubInvocation(t *testing.T, isTerminal func(colornope.Stream) bool) {
	t.Helper()

	stubs := gostub.Stub(&cli.OsExiter, func(int) {})
	stubs.Stub(&os.Args, []string{"colornope"})
	stubs.Stub(&colornope.DefaultTTY, colornope.TTYFunc(isTerminal))

	t.Cleanup(stubs.Reset)
}

func ttyAlways(colornope.Stream) bool { return true }

func ttyNever(colornope.Stream) bool { return false }

func exitCode(t *testing.T, err error) int {
	t.Helper()

	var coder cli.ExitCoder

	require.ErrorAs(t, err, &coder)

	return coder.ExitCode()
}

func TestCheck_EnabledExitsZero(t *testing.T) {
	stubInvocation(t, ttyAlways)
	t.Setenv(colornope.TermEnvVar, "xterm-256color")
	unsetenv(t, colornope.NoColorEnvVar)

	var out bytes.Buffer

	cmd := newCmd()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), []string{"check"})
	require.NoError(t, err)
	assert.Equal(t, "color enabled for stdout\n", out.String())
}

func TestCheck_WritesVerdictToRootWriter(t *testing.T) {
	stubInvocation(t, ttyAlways)
	t.Setenv(colornope.TermEnvVar, "xterm-256color")
	unsetenv(t, colornope.NoColorEnvVar)

	var out bytes.Buffer

	// Hosts embed the command under their own root and capture output there.
	root := &cli.Command{
		Name:      "colornope",
		Commands:  []*cli.Command{newCmd()},
		Writer:    &out,
		ErrWriter: io.Discard,
	}

	err := root.Run(context.Background(), []string{"colornope", "check"})
	require.NoError(t, err)
	assert.Equal(t, "color enabled for stdout\n", out.String())
}

func TestCheck_NoColorDisablesAndExitsOne(t *testing.T) {
	stubInvocation(t, ttyAlways)
	t.Setenv(colornope.TermEnvVar, "xterm-256color")
	t.Setenv(colornope.NoColorEnvVar, "")

	var out bytes.Buffer

	cmd := newCmd()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), []string{"check"})
	assert.Equal(t, 1, exitCode(t, err))
	assert.Equal(t, "color disabled for stdout\n", out.String())
}

func TestCheck_AlwaysWinsOverHostileEnvironment(t *testing.T) {
	stubInvocation(t, ttyNever)
	t.Setenv(colornope.TermEnvVar, "dumb")
	t.Setenv(colornope.NoColorEnvVar, "1")

	var out bytes.Buffer

	cmd := newCmd()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), []string{"check", "--color", "always", "--quiet"})
	require.NoError(t, err)
	assert.Empty(t, out.String(), "--quiet must suppress the verdict line")
}

func TestCheck_StreamSelection(t *testing.T) {
	// Only stderr is attached to a terminal.
	ttyStderrOnly := func(stream colornope.Stream) bool {
		return stream == colornope.Stderr
	}

	stubInvocation(t, ttyStderrOnly)
	t.Setenv(colornope.TermEnvVar, "xterm-256color")
	unsetenv(t, colornope.NoColorEnvVar)

	t.Run("stderr is enabled", func(t *testing.T) {
		var out bytes.Buffer

		cmd := newCmd()
		cmd.Writer = &out
		cmd.ErrWriter = io.Discard

		err := cmd.Run(context.Background(), []string{"check", "--stream", "stderr"})
		require.NoError(t, err)
		assert.Equal(t, "color enabled for stderr\n", out.String())
	})

	t.Run("stdout is disabled", func(t *testing.T) {
		var out bytes.Buffer

		cmd := newCmd()
		cmd.Writer = &out
		cmd.ErrWriter = io.Discard

		err := cmd.Run(context.Background(), []string{"check", "--stream", "stdout"})
		assert.Equal(t, 1, exitCode(t, err))
	})
}

func TestCheck_NoColorFlag(t *testing.T) {
	stubInvocation(t, ttyAlways)
	t.Setenv(colornope.TermEnvVar, "xterm-256color")
	unsetenv(t, colornope.NoColorEnvVar)

	cmd := newCmd()
	cmd.Writer = io.Discard
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), []string{"check", "--no-color"})
	assert.Equal(t, 1, exitCode(t, err))
}

func TestCheck_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid stream", args: []string{"check", "--stream", "stdin"}},
		{name: "invalid color mode", args: []string{"check", "--color", "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubInvocation(t, ttyAlways)

			cmd := newCmd()
			cmd.Writer = io.Discard
			cmd.ErrWriter = io.Discard

			err := cmd.Run(context.Background(), tt.args)
			assert.Equal(t, 2, exitCode(t, err))
		})
	}
}
