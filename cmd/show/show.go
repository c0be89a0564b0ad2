// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"text/tabwriter"

	colornope "github.com/ThomWright/color-nope"
	"github.com/ThomWright/color-nope/cmd/colormode"
	"github.com/ThomWright/color-nope/internal/ctxlog"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	outputFlag = "output"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	// ErrInvalidOutputFormat is returned when the output format is not text, json or yaml.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrWriteReport is returned when the report cannot be written.
	ErrWriteReport = errors.New("failed to write report")
)

// report is the full diagnostic view of one color decision.
type report struct {
	Platform     string        `json:"platform" yaml:"platform"`
	TerminalKind *string       `json:"terminal_kind" yaml:"terminal_kind"`
	NoColor      *string       `json:"no_color" yaml:"no_color"`
	Override     string        `json:"override" yaml:"override"`
	Streams      []streamInfo  `json:"streams" yaml:"streams"`
	Terminal     *terminalSize `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

type streamInfo struct {
	Name        string `json:"name" yaml:"name"`
	Interactive bool   `json:"interactive" yaml:"interactive"`
	Color       bool   `json:"color" yaml:"color"`
}

type terminalSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ShowCmd prints a diagnostic report of the color decision and the
// signals behind it.
var ShowCmd = newCmd()

func newCmd() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Description: "Show the color decision and the signals behind it.",
		Usage:       "colornope show --output json",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "Output format: text, json or yaml",
				Value:       formatText,
				DefaultText: formatText,
			},
		}, colormode.Flags()...),
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	decision, err := colormode.Decision(cmd.String(colormode.ColorFlagName), cmd.Bool(colormode.NoColorFlagName))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	rep := buildReport(decision, colornope.DefaultTTY)

	ctxlog.Debug(ctx, "assembled report",
		"platform", rep.Platform,
		"override", rep.Override,
	)

	// Subcommands do not inherit the root's Writer.
	out := cmd.Root().Writer

	switch format := cmd.String(outputFlag); format {
	case formatText:
		err = writeText(out, rep, decision.EnableColorFor(colornope.Stdout))
	case formatJSON:
		err = writeJSON(out, rep)
	case formatYAML:
		err = writeYAML(out, rep)
	default:
		return cli.Exit(fmt.Sprintf("%s: %q", ErrInvalidOutputFormat, format), 2)
	}

	if err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	return nil
}

// buildReport assembles the diagnostic report for a decision. Terminal
// detection is injected so the report is testable without real devices.
func buildReport(decision colornope.ColorNope, tty colornope.TTY) report {
	rep := report{
		Platform: runtime.GOOS,
		Override: decision.Override().String(),
	}

	if kind, ok := decision.TerminalKind(); ok {
		rep.TerminalKind = &kind
	}

	if signal, ok := decision.NoColorSignal(); ok {
		rep.NoColor = &signal
	}

	for _, stream := range []colornope.Stream{colornope.Stdout, colornope.Stderr} {
		rep.Streams = append(rep.Streams, streamInfo{
			Name:        stream.String(),
			Interactive: tty.IsTerminal(stream),
			Color:       decision.EnableColorForTTY(tty, stream),
		})
	}

	if tty.IsTerminal(colornope.Stdout) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			rep.Terminal = &terminalSize{Width: w, Height: h}
		}
	}

	return rep
}

// writeText renders the report for humans. Styling follows the same
// decision the report describes, applied to stdout.
func writeText(w io.Writer, rep report, enableColor bool) error {
	color.NoColor = !enableColor

	title := color.New(color.Bold)

	fmt.Fprintln(w, title.Sprint("Environment"))
	fmt.Fprintf(w, "  platform: %s\n", rep.Platform)
	fmt.Fprintf(w, "  %s: %s\n", colornope.TermEnvVar, formatEnvValue(rep.TerminalKind))
	fmt.Fprintf(w, "  %s: %s\n", colornope.NoColorEnvVar, formatEnvValue(rep.NoColor))
	fmt.Fprintf(w, "  override: %s\n", rep.Override)

	if rep.Terminal != nil {
		fmt.Fprintf(w, "  terminal size: %dx%d\n", rep.Terminal.Width, rep.Terminal.Height)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, title.Sprint("Streams"))

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "  NAME\tINTERACTIVE\tCOLOR\n")

	for _, s := range rep.Streams {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.Name, yesNo(s.Interactive), yesNo(s.Color))
	}

	return tw.Flush()
}

func writeJSON(w io.Writer, rep report) error {
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))

	return err
}

func writeYAML(w io.Writer, rep report) error {
	out, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}

// formatEnvValue quotes a set value, making an empty-but-set variable
// visibly different from an unset one.
func formatEnvValue(v *string) string {
	if v == nil {
		return color.New(color.Faint).Sprint("(unset)")
	}

	return color.New(color.FgCyan).Sprint(strconv.Quote(*v))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
