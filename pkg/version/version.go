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
	"math/big"
	"regexp"
	"strings"
)

// Pattern matches a version string carrying a numeric prerelease counter:
// major.minor.patch, a hyphen, a label free of '+' and digits, then the digits.
// It is anchored only at the start; anything after the digit run is ignored.
var Pattern = regexp.MustCompile(`^(\d+\.\d+\.\d+-[^+0-9]+)(\d+)`)

// ErrNoMatch describes input that does not carry a numeric prerelease counter.
var ErrNoMatch = errors.New("version string has no numeric prerelease counter")

// ParsedVersion is a version string split into its verbatim prefix and the
// numeric prerelease counter that follows it.
type ParsedVersion struct {
	// Start is "<major>.<minor>.<patch>-<label>", kept byte for byte.
	Start string `json:"start" yaml:"start"`

	// Prerelease is the digit run right after Start, including leading zeros.
	Prerelease string `json:"prerelease" yaml:"prerelease"`
}

// Parse matches s against Pattern.
// The second return value is false when s does not match; that is not an error.
func Parse(s string) (ParsedVersion, bool) {
	m := Pattern.FindStringSubmatch(s)
	if m == nil {
		return ParsedVersion{}, false
	}
	return ParsedVersion{Start: m[1], Prerelease: m[2]}, true
}

// MustParse parses s and panics if it does not match.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) ParsedVersion {
	v, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("MustParse: %q: %v", s, ErrNoMatch))
	}
	return v
}

// Next returns the version string that follows s, or false if s does not match.
// Content after the prerelease digits is not carried over.
func Next(s string) (string, bool) {
	v, ok := Parse(s)
	if !ok {
		return "", false
	}
	return v.Increment().String(), true
}

// Width is the number of digits in the prerelease counter.
func (v ParsedVersion) Width() int {
	return len(v.Prerelease)
}

// Counter returns the numeric value of the prerelease counter.
// The counter has no upper bound, so the value is arbitrary precision.
func (v ParsedVersion) Counter() *big.Int {
	n, ok := new(big.Int).SetString(v.Prerelease, 10)
	if !ok {
		return new(big.Int)
	}
	return n
}

// Increment returns a copy with the counter raised by one.
// The result is zero-padded to the original width and widens only when the
// new value needs more digits (rc009 -> rc010, rc999 -> rc1000).
func (v ParsedVersion) Increment() ParsedVersion {
	n := v.Counter()
	n.Add(n, big.NewInt(1))

	digits := n.Text(10)
	if pad := v.Width() - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	return ParsedVersion{Start: v.Start, Prerelease: digits}
}

// String returns Start followed by Prerelease.
func (v ParsedVersion) String() string {
	return v.Start + v.Prerelease
}

// Release returns the "<major>.<minor>.<patch>" part of Start.
func (v ParsedVersion) Release() string {
	release, _, _ := strings.Cut(v.Start, "-")
	return release
}

// Label returns the prerelease label between the hyphen and the counter.
func (v ParsedVersion) Label() string {
	_, label, _ := strings.Cut(v.Start, "-")
	return label
}

// IsValid reports whether v re-parses to itself, i.e. it could have come from Parse.
func (v ParsedVersion) IsValid() bool {
	if v.Start == "" || v.Prerelease == "" {
		return false
	}
	p, ok := Parse(v.String())
	return ok && p == v
}
