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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/ccversion/pkg/version"
)

type toolEntry struct {
	Compiler string          `json:"compiler" yaml:"compiler"`
	Version  version.Version `json:"version" yaml:"version"`
}

type toolMeta struct {
	Kind  string `json:"kind"`
	Build string `json:"build,omitempty"`
}

type toolDoc struct {
	toolMeta `json:",inline"`

	Tools    []toolEntry      `json:"tools"`
	Previous *version.Version `json:"previous"`
	Internal string           `json:"-"`
}

type rows struct {
	columns []string
	rows    [][]string
}

func (r rows) TableRows() ([]string, [][]string) { return r.columns, r.rows }

func sampleTools() []toolEntry {
	return []toolEntry{
		{Compiler: "gcc", Version: version.MustParse("13.2.0")},
		{Compiler: "clang-17", Version: version.MustParse("17.0")},
	}
}

func TestWriter_Formats(t *testing.T) {
	tests := []struct {
		format    Format
		unmarshal func([]byte, any) error
	}{
		{format: FormatJSON, unmarshal: json.Unmarshal},
		{format: FormatYAML, unmarshal: yaml.Unmarshal},
		{format: Format("xml"), unmarshal: json.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(tt.format, &buf).Serialize(context.Background(), sampleTools()))

			var got []toolEntry
			require.NoError(t, tt.unmarshal(buf.Bytes(), &got))
			assert.Equal(t, sampleTools(), got)
		})
	}
}

func TestWriter_YAMLRendersVersionText(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]version.Version{"gcc": version.MustParse("13.2")}
	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), data))
	assert.Equal(t, "gcc: \"13.2\"\n", buf.String())
}

func TestWriter_TableFlattensByJSONName(t *testing.T) {
	var buf bytes.Buffer
	data := toolDoc{
		toolMeta: toolMeta{Kind: "DetectionReport"},
		Tools:    sampleTools(),
		Internal: "hidden",
	}
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), data))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "FIELD"))
	assert.Contains(t, out, "kind")
	assert.Contains(t, out, "DetectionReport")
	assert.Contains(t, out, "tools[0].compiler")
	assert.Contains(t, out, "tools[1].version")
	assert.Contains(t, out, "17.0")
	assert.Contains(t, out, "previous")
	assert.NotContains(t, out, "toolMeta")
	assert.NotContains(t, out, "hidden")
}

func TestWriter_TableScalarAndMap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), version.MustParse("19.16")))
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "19.16")

	buf.Reset()
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(),
		map[string]any{"CC": "gcc", "CXX": "g++"}))
	assert.Contains(t, buf.String(), "CXX")
	assert.Contains(t, buf.String(), "g++")
}

func TestWriter_TableTabular(t *testing.T) {
	var buf bytes.Buffer
	data := rows{
		columns: []string{"COMPILER", "VERSION"},
		rows:    [][]string{{"gcc", "13.2.0"}, {"cl", "19.16.27045"}},
	}
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), data))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"COMPILER", "VERSION"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"cl", "19.16.27045"}, strings.Fields(lines[2]))
}

func TestWriter_TableEmpty(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{name: "empty slice", data: []toolEntry{}},
		{name: "no rows", data: rows{columns: []string{"COMPILER"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), tt.data))
			assert.Equal(t, "<empty>\n", buf.String())
		})
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	for _, f := range []Format{"", "xml", "JSON"} {
		assert.True(t, f.IsUnknown(), string(f))
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")

		ser := NewFileWriterOrStdout(FormatJSON, path)
		require.NoError(t, ser.Serialize(context.Background(), sampleTools()))

		closer, ok := ser.(Closer)
		require.True(t, ok)
		require.NoError(t, closer.Close())
		require.NoError(t, closer.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var got []toolEntry
		require.NoError(t, json.Unmarshal(content, &got))
		assert.Equal(t, sampleTools(), got)
	})

	t.Run("stdout fallbacks", func(t *testing.T) {
		for _, path := range []string{"", "  \t", "/nonexistent/dir/report.json", "cm://missing-name"} {
			ser := NewFileWriterOrStdout(FormatYAML, path)
			w, ok := ser.(*Writer)
			require.True(t, ok, path)
			assert.Equal(t, os.Stdout, w.output, path)
			assert.NoError(t, w.Close())
		}
	})

	t.Run("configmap", func(t *testing.T) {
		ser := NewFileWriterOrStdout(FormatYAML, "cm://build-farm/node-a")
		cm, ok := ser.(*ConfigMapWriter)
		require.True(t, ok)
		assert.Equal(t, "build-farm", cm.namespace)
		assert.Equal(t, "node-a", cm.name)
		assert.Equal(t, FormatYAML, cm.format)
	})
}
