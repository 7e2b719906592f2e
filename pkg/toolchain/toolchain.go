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

// Package toolchain turns a compiler command line into a compiler.Tool.
//
// The probe does not search the system for compilers. It takes the command
// from an explicit value or from the CC/CXX environment variables, falls back
// to the platform default ("cc"/"c++", or "cl" on Windows), and classifies the
// family from the executable name:
//
//	gcc, g++, cc, c++, x86_64-linux-gnu-gcc-12  -> gnu
//	clang, clang++-17, aarch64-linux-android21-clang -> clang
//	cl, cl.exe, clang-cl                         -> msvc
//
// Compiler wrappers such as ccache, sccache and distcc are kept as the
// executable and the wrapped compiler is classified instead.
package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/NVIDIA/ccversion/pkg/compiler"
	"github.com/NVIDIA/ccversion/pkg/errors"
)

// Environment variables consulted by the probe.
const (
	EnvCC  = "CC"
	EnvCXX = "CXX"
)

var wrappers = map[string]bool{
	"ccache":     true,
	"sccache":    true,
	"distcc":     true,
	"icecc":      true,
	"buildcache": true,
}

// Probe builds compiler tools from command lines and the environment.
type Probe struct {
	getenv func(string) string
	goos   string
	family compiler.Family
}

// Option is a functional option for configuring a Probe.
type Option func(*Probe)

// WithGetenv replaces os.Getenv, mainly for tests.
func WithGetenv(getenv func(string) string) Option {
	return func(p *Probe) {
		p.getenv = getenv
	}
}

// WithGOOS sets the target operating system used to pick default compilers.
func WithGOOS(goos string) Option {
	return func(p *Probe) {
		p.goos = goos
	}
}

// WithFamily skips name based classification and uses family for every tool.
func WithFamily(family compiler.Family) Option {
	return func(p *Probe) {
		p.family = family
	}
}

// NewProbe creates a Probe for the host operating system.
func NewProbe(opts ...Option) *Probe {
	p := &Probe{
		getenv: os.Getenv,
		goos:   runtime.GOOS,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// CC returns the C compiler from $CC or the platform default.
func (p *Probe) CC() (compiler.Tool, error) {
	return p.fromEnv(EnvCC, "cc")
}

// CXX returns the C++ compiler from $CXX or the platform default.
func (p *Probe) CXX() (compiler.Tool, error) {
	return p.fromEnv(EnvCXX, "c++")
}

func (p *Probe) fromEnv(key, fallback string) (compiler.Tool, error) {
	command := strings.TrimSpace(p.getenv(key))
	if command == "" {
		command = fallback
		if p.goos == "windows" {
			command = "cl"
		}
	}
	return p.Tool(command)
}

// Tool parses a compiler command line such as "gcc", "/opt/bin/clang-17"
// or "ccache g++ -m32" into a compiler.Tool.
func (p *Probe) Tool(command string) (compiler.Tool, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return compiler.Tool{}, errors.New(errors.ErrCodeInvalidRequest, "compiler command cannot be empty")
	}

	tool := compiler.Tool{
		Path: fields[0],
		Args: fields[1:],
	}

	target := fields[0]
	if wrappers[baseName(target)] {
		if len(fields) < 2 {
			return compiler.Tool{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"compiler wrapper without a compiler", map[string]any{"command": command})
		}
		target = fields[1]
	}

	tool.Family = p.family
	if tool.Family == compiler.FamilyUnknown {
		tool.Family = Classify(target)
	}

	return tool, nil
}

// Classify guesses the compiler family from an executable path.
func Classify(path string) compiler.Family {
	name := baseName(path)

	switch {
	case name == "cl" || name == "clang-cl" || strings.HasPrefix(name, "clang-cl-"):
		return compiler.FamilyMSVC
	case strings.Contains(name, "clang"):
		return compiler.FamilyClang
	case isGNUName(name):
		return compiler.FamilyGNU
	default:
		return compiler.FamilyUnknown
	}
}

func isGNUName(name string) bool {
	// strip a trailing version, as in gcc-13 or g++-12
	if i := strings.LastIndex(name, "-"); i > 0 && isDigits(name[i+1:]) {
		name = name[:i]
	}

	switch name {
	case "gcc", "g++", "cc", "c++":
		return true
	}
	// cross compilers: x86_64-w64-mingw32-gcc, arm-none-eabi-g++
	return strings.HasSuffix(name, "-gcc") || strings.HasSuffix(name, "-g++")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// baseName returns the lower-case executable name without directory or .exe suffix.
func baseName(path string) string {
	// accept both separators regardless of host OS
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	name := strings.ToLower(filepath.Base(path))
	return strings.TrimSuffix(name, ".exe")
}
