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

package report

import (
	"fmt"
	"strconv"

	"github.com/NVIDIA/ccversion/pkg/compiler"
	"github.com/NVIDIA/ccversion/pkg/constraint"
	"github.com/NVIDIA/ccversion/pkg/header"
	"github.com/NVIDIA/ccversion/pkg/version"
)

// Report is the document produced by a detection run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Constraint is the required version expression, if any.
	Constraint string `json:"constraint,omitempty" yaml:"constraint,omitempty"`

	Detections []Result `json:"detections" yaml:"detections"`
}

// Result is one detected compiler, with the constraint outcome when a
// constraint was given.
type Result struct {
	compiler.Detection `json:",inline" yaml:",inline"`

	Satisfied *bool `json:"satisfied,omitempty" yaml:"satisfied,omitempty"`
}

// New builds a Report from detections and checks each one against req,
// which may be nil. The second return value describes every detection that
// does not satisfy req.
func New(detections []*compiler.Detection, req *constraint.Constraint, toolVersion string, opts ...header.Option) (*Report, []string) {
	r := &Report{
		Header:     header.New(header.KindDetectionReport, toolVersion, opts...),
		Detections: make([]Result, 0, len(detections)),
	}
	if req != nil {
		r.Constraint = req.String()
	}

	var unsatisfied []string
	for _, det := range detections {
		res := Result{Detection: *det}
		if req != nil {
			ok := req.Check(det.Version)
			res.Satisfied = &ok
			if !ok {
				unsatisfied = append(unsatisfied, fmt.Sprintf("%s is %s", det.Compiler, det.Version))
			}
		}
		r.Detections = append(r.Detections, res)
	}

	return r, unsatisfied
}

// TableRows lists one row per detection for table output.
func (r *Report) TableRows() ([]string, [][]string) {
	columns := []string{"COMPILER", "FAMILY", "VERSION"}
	if r.Constraint != "" {
		columns = append(columns, "SATISFIES "+r.Constraint)
	}

	rows := make([][]string, 0, len(r.Detections))
	for _, d := range r.Detections {
		row := []string{d.Compiler, d.Family.String(), d.Version.String()}
		if r.Constraint != "" {
			row = append(row, strconv.FormatBool(d.Satisfied != nil && *d.Satisfied))
		}
		rows = append(rows, row)
	}
	return columns, rows
}

// Parsed describes how a version string was read.
type Parsed struct {
	Input     string `json:"input" yaml:"input"`
	Version   string `json:"version" yaml:"version"`
	Major     int    `json:"major" yaml:"major"`
	Minor     *int   `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch     *int   `json:"patch,omitempty" yaml:"patch,omitempty"`
	Precision int    `json:"precision" yaml:"precision"`
}

// Parse reads input as a version. Absent components stay nil.
func Parse(input string) (*Parsed, error) {
	v, err := version.Parse(input)
	if err != nil {
		return nil, err
	}

	p := &Parsed{
		Input:     input,
		Version:   v.String(),
		Major:     v.Major(),
		Precision: v.Precision(),
	}
	if minor, ok := v.Minor(); ok {
		p.Minor = &minor
	}
	if patch, ok := v.Patch(); ok {
		p.Patch = &patch
	}
	return p, nil
}

// Comparison is the ordering of two versions.
type Comparison struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
}

// Compare orders a against b, treating missing components as zero.
func Compare(a, b version.Version) Comparison {
	c := Comparison{
		A:        a.String(),
		B:        b.String(),
		Result:   a.Compare(b),
		Relation: "=",
	}
	switch c.Result {
	case -1:
		c.Relation = "<"
	case 1:
		c.Relation = ">"
	}
	return c
}

// String renders the comparison as "A < B".
func (c Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.A, c.Relation, c.B)
}
