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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// componentNames maps a component index to its name in error messages.
// Only these components are consulted; anything past patch is ignored.
var componentNames = [...]string{"major", "minor", "patch"}

// component is an optional non-negative version number component.
type component struct {
	value int
	set   bool
}

func (c component) orZero() int {
	if !c.set {
		return 0
	}
	return c.value
}

// Version represents a dotted compiler version with a required Major and
// optional Minor and Patch components.
//
// Missing components compare as zero, so "1", "1.0" and "1.0.0" are equal,
// but String renders only the components that were present when parsed.
// Version values are immutable.
type Version struct {
	major int
	minor component
	patch component
}

// New creates a Version with all three components present.
func New(major, minor, patch int) Version {
	return Version{
		major: major,
		minor: component{value: minor, set: true},
		patch: component{value: patch, set: true},
	}
}

// Parse parses a dotted version string such as "11", "11.2" or "11.2.0".
// Components after patch are ignored, so "19.16.27027.1" parses as 19.16.27027.
// The input is not trimmed; callers reading tool output must trim it first.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	parts := strings.Split(s, ".")

	var v Version
	for i := 0; i < len(parts) && i < len(componentNames); i++ {
		num, err := parseComponent(componentNames[i], parts[i])
		if err != nil {
			return Version{}, err
		}

		switch i {
		case 0:
			v.major = num
		case 1:
			v.minor = component{value: num, set: true}
		case 2:
			v.patch = component{value: num, set: true}
		}
	}

	return v, nil
}

func parseComponent(name, part string) (int, error) {
	if strings.HasPrefix(part, "-") {
		return 0, fmt.Errorf("%w: %s %q", ErrNegativeComponent, name, part)
	}
	num, err := strconv.ParseUint(part, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrNonNumeric, name, part, err)
	}
	return int(num), nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Major returns the major component.
func (v Version) Major() int {
	return v.major
}

// Minor returns the minor component and whether it was present.
func (v Version) Minor() (int, bool) {
	return v.minor.value, v.minor.set
}

// Patch returns the patch component and whether it was present.
func (v Version) Patch() (int, bool) {
	return v.patch.value, v.patch.set
}

// Precision returns the number of components present (1, 2 or 3).
func (v Version) Precision() int {
	switch {
	case v.patch.set:
		return 3
	case v.minor.set:
		return 2
	default:
		return 1
	}
}

// String returns the components that were present, joined with dots.
func (v Version) String() string {
	s := strconv.Itoa(v.major)
	if v.minor.set {
		s += "." + strconv.Itoa(v.minor.value)
	}
	if v.patch.set {
		s += "." + strconv.Itoa(v.patch.value)
	}
	return s
}

// Compare returns -1 if v < other, 0 if v == other and 1 if v > other.
// Missing components are treated as zero.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.major, other.major); c != 0 {
		return c
	}
	if c := compareInt(v.minor.orZero(), other.minor.orZero()); c != 0 {
		return c
	}
	return compareInt(v.patch.orZero(), other.patch.orZero())
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equals reports whether v and other compare equal.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v is strictly older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// EqualsOrNewer reports whether v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// MarshalText implements encoding.TextMarshaler using the rendered form.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
