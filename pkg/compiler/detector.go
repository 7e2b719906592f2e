// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compiler

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/NVIDIA/ccversion/pkg/errors"
	"github.com/NVIDIA/ccversion/pkg/version"
)

const (
	// dumpVersionFlag asks GNU and Clang compilers for the bare version number.
	dumpVersionFlag = "-dumpversion"

	// msvcCommand is always invoked without arguments; it prints its banner to stderr.
	msvcCommand = "cl"
)

// Detection is the outcome of detecting a single compiler.
type Detection struct {
	// Compiler is the command line that produced the version.
	Compiler string `json:"compiler" yaml:"compiler"`

	// Family is the family the tool was classified as.
	Family Family `json:"family" yaml:"family"`

	// Version is the parsed compiler version.
	Version version.Version `json:"version" yaml:"version"`

	// Raw is the trimmed version text reported by the compiler.
	Raw string `json:"raw" yaml:"raw"`
}

// Option is a functional option for configuring a Detector.
type Option func(*Detector)

// WithRunner sets the Runner used to start compiler processes.
func WithRunner(r Runner) Option {
	return func(d *Detector) {
		d.runner = r
	}
}

// Detector queries compilers for their version.
type Detector struct {
	runner Runner
}

// NewDetector creates a Detector that runs compilers with ExecRunner
// unless overridden with WithRunner.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		runner: ExecRunner{},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Detect returns the version of tool. Exactly one process is started for a
// supported family and none for FamilyUnknown.
func (d *Detector) Detect(ctx context.Context, tool Tool) (version.Version, error) {
	det, err := d.Inspect(ctx, tool)
	if err != nil {
		return version.Version{}, err
	}
	return det.Version, nil
}

// Inspect is like Detect but also returns the command and raw text the
// version was read from.
func (d *Detector) Inspect(ctx context.Context, tool Tool) (*Detection, error) {
	var (
		cmd  Command
		text string
	)

	switch {
	case tool.IsLikeGNU(), tool.IsLikeClang():
		cmd = tool.Command(dumpVersionFlag)
		res, err := d.run(ctx, tool, cmd)
		if err != nil {
			return nil, err
		}
		text = decodeLossy(res.Stdout)

	case tool.IsLikeMSVC():
		cmd = Command{Name: msvcCommand, Env: tool.Env}
		res, err := d.run(ctx, tool, cmd)
		if err != nil {
			return nil, err
		}
		text, err = ExtractMSVCVersion(decodeLossy(res.Stderr))
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.NewWithContext(errors.ErrCodeUnknownCompiler,
			"failed to detect compiler", map[string]any{
				"path":   tool.Path,
				"family": tool.Family.String(),
			})
	}

	raw := strings.TrimSpace(text)
	v, err := version.Parse(raw)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeParseFailed,
			"failed to parse compiler version", err, map[string]any{
				"command": cmd.String(),
				"output":  raw,
			})
	}

	slog.Debug("compiler version detected",
		"command", cmd.String(),
		"family", tool.Family.String(),
		"version", v.String())

	return &Detection{
		Compiler: cmd.String(),
		Family:   tool.Family,
		Version:  v,
		Raw:      raw,
	}, nil
}

func (d *Detector) run(ctx context.Context, tool Tool, cmd Command) (*Result, error) {
	slog.Debug("running compiler version query",
		"command", cmd.String(),
		"family", tool.Family.String())

	res, err := d.runner.Run(ctx, cmd)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeCommandFailed,
			"failed to run compiler", err, map[string]any{
				"command": cmd.String(),
			})
	}

	if res.ExitCode != 0 {
		slog.Debug("compiler exited with non-zero status",
			"command", cmd.String(),
			"exitCode", res.ExitCode)
	}

	return res, nil
}

// decodeLossy converts process output to a string, replacing invalid
// UTF-8 sequences with U+FFFD.
func decodeLossy(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}
