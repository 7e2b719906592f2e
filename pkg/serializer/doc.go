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

// Package serializer writes reports as JSON, YAML or a flat table.
//
// # Formats
//
// JSON:
//   - Machine-parseable, indented two spaces
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, the default for the CLI
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - FIELD/VALUE rows with dotted keys for nested values
//   - Values implementing encoding.TextMarshaler (version.Version,
//     compiler.Family) are printed in their text form
//
// # Usage
//
//	ser := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer func() {
//	    if closer, ok := ser.(serializer.Closer); ok {
//	        _ = closer.Close()
//	    }
//	}()
//	if err := ser.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// An empty path or a file that cannot be created falls back to stdout.
package serializer
