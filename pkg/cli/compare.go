/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ccversion/pkg/report"
	ver "github.com/NVIDIA/ccversion/pkg/version"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two dotted versions",
		ArgsUsage: "A B",
		Description: `Print "A < B", "A = B" or "A > B". Missing components count as zero,
so "11" = "11.0.0".`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("compare requires exactly 2 arguments, got %d", cmd.NArg())
			}

			a, err := ver.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().Get(0), err)
			}
			b, err := ver.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().Get(1), err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, report.Compare(a, b))
			return err
		},
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Show the components of a dotted version",
		ArgsUsage: "VERSION",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if cmd.NArg() != 1 {
				return fmt.Errorf("parse requires exactly 1 argument, got %d", cmd.NArg())
			}

			input := cmd.Args().First()
			res, err := report.Parse(input)
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", input, err)
			}

			return writeReport(ctx, cmd, outFormat, res)
		},
	}
}
