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

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/ccversion/pkg/report"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{a: "11", b: "11.0.0", want: "11 = 11.0.0\n"},
		{a: "9.1", b: "10", want: "9.1 < 10\n"},
		{a: "19.16.27027", b: "19.16", want: "19.16.27027 > 19.16\n"},
		{a: "1.10", b: "1.9", want: "1.10 > 1.9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			out, err := runCLI(t, deps{}, "compare", tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCompare_Errors(t *testing.T) {
	_, err := runCLI(t, deps{}, "compare", "1.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 2 arguments")

	_, err = runCLI(t, deps{}, "compare", "1.x", "1.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid version "1.x"`)
}

func TestParse(t *testing.T) {
	out, err := runCLI(t, deps{}, "parse", "--format", "json", "19.16")
	require.NoError(t, err)

	var res report.Parsed
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "19.16", res.Input)
	assert.Equal(t, "19.16", res.Version)
	assert.Equal(t, 19, res.Major)
	require.NotNil(t, res.Minor)
	assert.Equal(t, 16, *res.Minor)
	assert.Nil(t, res.Patch)
	assert.Equal(t, 2, res.Precision)
}

func TestParse_YAML(t *testing.T) {
	out, err := runCLI(t, deps{}, "parse", "4.2.1.5")
	require.NoError(t, err)

	var res report.Parsed
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "4.2.1", res.Version)
	require.NotNil(t, res.Patch)
	assert.Equal(t, 1, *res.Patch)
	assert.Equal(t, 3, res.Precision)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: []string{"parse"}},
		{name: "empty", args: []string{"parse", ""}},
		{name: "negative", args: []string{"parse", "-1"}},
		{name: "format", args: []string{"parse", "--format", "xml", "1.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, deps{}, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestExitCode(t *testing.T) {
	unsatisfied := fmt.Errorf("%w %q: gcc is 8.5.0", errUnsatisfied, ">= 99")

	ctx, cancel := context.WithCancel(context.Background())
	assert.Equal(t, 1, exitCode(ctx, unsatisfied))
	assert.Equal(t, 2, exitCode(ctx, assert.AnError))
	assert.Equal(t, 2, exitCode(ctx, fmt.Errorf("invalid --family %q", "icc")))
	assert.Equal(t, 2, exitCode(ctx, context.DeadlineExceeded))

	cancel()
	assert.Equal(t, 2, exitCode(ctx, unsatisfied))
}
