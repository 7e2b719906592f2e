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
	"slices"
	"strings"
)

// Tool is a handle to a compiler found by a toolchain probe.
type Tool struct {
	// Path is the compiler executable, either absolute or looked up in PATH.
	Path string `json:"path" yaml:"path"`

	// Args are passed before any query flag, e.g. for wrappers like "ccache gcc".
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Env holds additional KEY=VALUE entries for the compiler process.
	Env []string `json:"env,omitempty" yaml:"env,omitempty"`

	// Family selects how the version is queried.
	Family Family `json:"family" yaml:"family"`
}

// IsLikeGNU reports whether the tool uses the GCC command line.
func (t Tool) IsLikeGNU() bool {
	return t.Family == FamilyGNU
}

// IsLikeClang reports whether the tool uses the Clang command line.
func (t Tool) IsLikeClang() bool {
	return t.Family == FamilyClang
}

// IsLikeMSVC reports whether the tool uses the cl.exe command line.
func (t Tool) IsLikeMSVC() bool {
	return t.Family == FamilyMSVC
}

// Command returns the invocation of the tool with extra appended to its arguments.
func (t Tool) Command(extra ...string) Command {
	args := make([]string, 0, len(t.Args)+len(extra))
	args = append(args, t.Args...)
	args = append(args, extra...)
	return Command{
		Name: t.Path,
		Args: args,
		Env:  slices.Clone(t.Env),
	}
}

// Command is a single process invocation.
type Command struct {
	Name string
	Args []string
	Env  []string
}

// String returns the command line joined with spaces.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}
