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

// Package constraint evaluates version requirements such as ">= 9.1" against
// a detected compiler version.
//
// Supported operators are >=, <=, >, <, == and !=. A bare version ("11.2")
// means ==. Comparisons follow version.Version, so "== 11" matches 11.0.0.
package constraint

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/ccversion/pkg/errors"
	"github.com/NVIDIA/ccversion/pkg/version"
)

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorEQ represents "==" (equal).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (not equal).
	OperatorNE Operator = "!="
)

// Constraint is a parsed version requirement.
type Constraint struct {
	Operator Operator
	Version  version.Version
}

// Parse parses a constraint expression.
// Examples:
//   - ">= 9.1" -> {Operator: ">=", Version: 9.1}
//   - "<19.30" -> {Operator: "<", Version: 19.30}
//   - "11" -> {Operator: "==", Version: 11}
func Parse(expr string) (*Constraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	op := OperatorEQ
	value := expr

	// Check for operators (longest first to avoid matching ">" when ">=" is intended)
	operators := []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}
	for _, candidate := range operators {
		if strings.HasPrefix(expr, string(candidate)) {
			op = candidate
			value = strings.TrimSpace(strings.TrimPrefix(expr, string(candidate)))
			break
		}
	}

	if value == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint version cannot be empty after operator")
	}

	v, err := version.Parse(value)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot parse constraint version", err, map[string]any{"expression": expr})
	}

	return &Constraint{Operator: op, Version: v}, nil
}

// Check reports whether actual satisfies the constraint.
func (c *Constraint) Check(actual version.Version) bool {
	cmp := actual.Compare(c.Version)

	switch c.Operator {
	case OperatorGTE:
		return cmp >= 0
	case OperatorGT:
		return cmp > 0
	case OperatorLTE:
		return cmp <= 0
	case OperatorLT:
		return cmp < 0
	case OperatorNE:
		return cmp != 0
	default:
		return cmp == 0
	}
}

// String returns a string representation of the constraint.
func (c *Constraint) String() string {
	return fmt.Sprintf("%s %s", c.Operator, c.Version)
}
