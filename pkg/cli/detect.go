/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ccversion/pkg/compiler"
	"github.com/NVIDIA/ccversion/pkg/constraint"
	"github.com/NVIDIA/ccversion/pkg/defaults"
	"github.com/NVIDIA/ccversion/pkg/report"
	"github.com/NVIDIA/ccversion/pkg/serializer"
	"github.com/NVIDIA/ccversion/pkg/toolchain"
)

// errUnsatisfied marks a successful detection whose version fails --require.
var errUnsatisfied = errors.New("compiler version does not satisfy")

// detectCmd detects compiler versions and writes them as a report.
func detectCmd(d deps) *cli.Command {
	return &cli.Command{
		Name:                  "detect",
		EnableShellCompletion: true,
		Usage:                 "Detect the version of one or more C/C++ compilers",
		Description: `Run the compiler's own version query and report the parsed version.

GNU and Clang compilers are asked with -dumpversion. For MSVC, cl is run
without arguments and the version is read from its banner.

The compiler comes from --cc, else from $CC (or $CXX with --cxx), else the
platform default (cc, or cl on Windows). The family is guessed from the
executable name unless --family is given.

# Examples

Detect the default compiler:
  ccversion detect

Detect several compilers and write JSON:
  ccversion detect --cc gcc-12 --cc clang-17 --format json

Gate a build on a minimum version:
  ccversion detect --cc "ccache g++" --require ">= 9.1"`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "cc",
				Aliases: []string{"c"},
				Usage:   "Compiler command line to detect (can be repeated)",
				Sources: cli.EnvVars("CCVERSION_CC"),
			},
			&cli.BoolFlag{
				Name:  "cxx",
				Usage: "Use $CXX instead of $CC when --cc is not set",
			},
			&cli.StringFlag{
				Name:    "family",
				Usage:   fmt.Sprintf("Compiler family (%s), guessed from the executable name if empty", strings.Join(compiler.SupportedFamilies(), ", ")),
				Sources: cli.EnvVars("CCVERSION_FAMILY"),
			},
			&cli.StringFlag{
				Name:    "require",
				Aliases: []string{"r"},
				Usage:   `Fail unless every detected version satisfies the constraint, e.g. ">= 9.1"`,
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Time allowed for the compilers to report their versions",
				Value:   defaults.DetectTimeout,
				Sources: cli.EnvVars("CCVERSION_TIMEOUT"),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDetect(ctx, cmd, d)
		},
	}
}

func runDetect(ctx context.Context, cmd *cli.Command, d deps) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	family := compiler.FamilyUnknown
	if f := cmd.String("family"); f != "" {
		if family, err = compiler.ParseFamily(f); err != nil {
			return fmt.Errorf("invalid --family: %w", err)
		}
	}

	var req *constraint.Constraint
	if expr := cmd.String("require"); expr != "" {
		if req, err = constraint.Parse(expr); err != nil {
			return fmt.Errorf("invalid --require: %w", err)
		}
	}

	timeout := cmd.Duration("timeout")
	if timeout <= 0 || timeout > defaults.MaxDetectTimeout {
		return fmt.Errorf("invalid --timeout %s: must be between 0 and %s", timeout, defaults.MaxDetectTimeout)
	}

	tools, err := resolveTools(d.probe(family), cmd.StringSlice("cc"), cmd.Bool("cxx"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	detections, err := d.detector.DetectAll(ctx, tools)
	if err != nil {
		return fmt.Errorf("failed to detect compiler version: %w", err)
	}

	rep, unsatisfied := report.New(detections, req, version)
	for _, det := range detections {
		slog.Info(fmt.Sprintf("cc version %s is detected", det.Version),
			"compiler", det.Compiler,
			"family", det.Family.String())
	}

	if err := writeReport(ctx, cmd, outFormat, rep); err != nil {
		return err
	}

	if len(unsatisfied) > 0 {
		return fmt.Errorf("%w %q: %s", errUnsatisfied, req.String(), strings.Join(unsatisfied, ", "))
	}

	return nil
}

// resolveTools turns the --cc values into tools, falling back to the environment.
func resolveTools(probe *toolchain.Probe, commands []string, cxx bool) ([]compiler.Tool, error) {
	if len(commands) == 0 {
		var (
			tool compiler.Tool
			err  error
		)
		if cxx {
			tool, err = probe.CXX()
		} else {
			tool, err = probe.CC()
		}
		if err != nil {
			return nil, err
		}
		return []compiler.Tool{tool}, nil
	}

	tools := make([]compiler.Tool, 0, len(commands))
	for _, c := range commands {
		tool, err := probe.Tool(c)
		if err != nil {
			return nil, fmt.Errorf("invalid --cc %q: %w", c, err)
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// writeReport writes data to --output, or to the command writer when unset.
func writeReport(ctx context.Context, cmd *cli.Command, format serializer.Format, data any) error {
	var ser serializer.Serializer
	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		ser = serializer.NewFileWriterOrStdout(format, path)
	} else {
		ser = serializer.NewWriter(format, cmd.Root().Writer)
	}

	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, data); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}
