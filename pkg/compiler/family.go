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
	"fmt"
	"strings"
)

// Family identifies a compiler's version reporting convention.
type Family int

const (
	// FamilyUnknown is a compiler that matches no supported convention.
	FamilyUnknown Family = iota
	// FamilyGNU is GCC and compilers that mimic its command line.
	FamilyGNU
	// FamilyClang is LLVM Clang, including Apple Clang.
	FamilyClang
	// FamilyMSVC is the Microsoft Visual C++ compiler (cl.exe).
	FamilyMSVC
)

var familyNames = map[Family]string{
	FamilyUnknown: "unknown",
	FamilyGNU:     "gnu",
	FamilyClang:   "clang",
	FamilyMSVC:    "msvc",
}

// String returns the lower-case name of the family.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return familyNames[FamilyUnknown]
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	if string(text) == FamilyUnknown.String() {
		*f = FamilyUnknown
		return nil
	}
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFamily converts a family name (case-insensitive) to a Family.
// "gcc" and "cl" are accepted as aliases for gnu and msvc.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gnu", "gcc":
		return FamilyGNU, nil
	case "clang":
		return FamilyClang, nil
	case "msvc", "cl":
		return FamilyMSVC, nil
	default:
		return FamilyUnknown, fmt.Errorf("unknown compiler family: %q", s)
	}
}

// SupportedFamilies returns the names accepted by ParseFamily.
func SupportedFamilies() []string {
	return []string{
		FamilyGNU.String(),
		FamilyClang.String(),
		FamilyMSVC.String(),
	}
}
