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

package api

import (
	"log/slog"
	"strings"

	"github.com/NVIDIA/ccversion/pkg/compiler"
	"github.com/NVIDIA/ccversion/pkg/errors"
	"github.com/NVIDIA/ccversion/pkg/toolchain"
)

// EnvAllowedCompilers lists the compiler command lines the server may run,
// separated by commas, e.g. "gcc,clang-17,ccache g++".
const EnvAllowedCompilers = "CCVERSION_ALLOWED_COMPILERS"

// AllowedCompilers resolves the compilers the API may run. Requests can only
// select from this list; they never supply a command line of their own.
// An empty list falls back to the probe's C compiler.
func AllowedCompilers(probe *toolchain.Probe, list string) ([]compiler.Tool, error) {
	var tools []compiler.Tool
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		tool, err := probe.Tool(item)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid allowed compiler", err, map[string]any{"compiler": item})
		}
		tools = append(tools, tool)
	}

	if len(tools) == 0 {
		tool, err := probe.CC()
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}

	for _, tool := range tools {
		slog.Debug("allowed compiler",
			"compiler", toolName(tool),
			"family", tool.Family.String())
	}

	return tools, nil
}

// toolName is the name clients use to select a tool: its command line.
func toolName(tool compiler.Tool) string {
	return tool.Command().String()
}
