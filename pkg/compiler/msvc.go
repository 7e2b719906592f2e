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
	"strings"

	"github.com/NVIDIA/ccversion/pkg/errors"
)

const (
	msvcVersionMarker = "Version "
	msvcTargetMarker  = " for "
)

// ExtractMSVCVersion returns the text between "Version " and " for " in a
// cl.exe banner, e.g. "19.16.27027.1" from
// "Microsoft(R) C/C++ Optimizing Compiler Version 19.16.27027.1 for x64".
// The result is not trimmed.
func ExtractMSVCVersion(banner string) (string, error) {
	start := strings.Index(banner, msvcVersionMarker)
	end := strings.Index(banner, msvcTargetMarker)

	if start < 0 || end < 0 || end < start+len(msvcVersionMarker) {
		return "", errors.NewWithContext(errors.ErrCodeBannerFormat,
			"MSVC banner format not recognized", map[string]any{
				"banner": firstLine(banner),
			})
	}

	return banner[start+len(msvcVersionMarker) : end], nil
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
