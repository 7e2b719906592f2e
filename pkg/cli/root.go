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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/ccversion/pkg/compiler"
	"github.com/NVIDIA/ccversion/pkg/logging"
	"github.com/NVIDIA/ccversion/pkg/toolchain"
)

const (
	name           = "ccversion"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// deps are the collaborators commands use; tests replace them.
type deps struct {
	detector *compiler.Detector
	probe    func(family compiler.Family) *toolchain.Probe
}

func defaultDeps() deps {
	return deps{
		detector: compiler.NewDetector(),
		probe: func(family compiler.Family) *toolchain.Probe {
			return toolchain.NewProbe(toolchain.WithFamily(family))
		},
	}
}

func newRootCmd(d deps) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Detect and compare C/C++ compiler versions",
		Description: fmt.Sprintf(`ccversion - C/C++ compiler version detection

Version: %s
Commit:  %s
Built:   %s

detect  - runs the compiler's version query and reports the parsed version.
compare - compares two dotted versions.
parse   - shows how a dotted version is read.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			detectCmd(d),
			compareCmd(),
			parseCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(logLevel string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}

// Execute runs the ccversion command line. This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(defaultDeps()).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := exitCode(ctx, err)
		cancel()
		os.Exit(code)
	}
}

// exitCode maps an error to the documented exit codes: 1 when every
// compiler was detected but one fails --require, 2 for anything else.
func exitCode(ctx context.Context, err error) int {
	if ctx.Err() == nil && errors.Is(err, errUnsatisfied) {
		return 1
	}
	return 2
}
