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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantOK         bool
		wantStart      string
		wantPrerelease string
	}{
		{
			name:           "zero padded counter",
			input:          "1.2.3-beta007",
			wantOK:         true,
			wantStart:      "1.2.3-beta",
			wantPrerelease: "007",
		},
		{
			name:           "dotted label",
			input:          "1.2.3-rc.5",
			wantOK:         true,
			wantStart:      "1.2.3-rc.",
			wantPrerelease: "5",
		},
		{
			name:           "build metadata ignored",
			input:          "1.2.3-rc001+build.5",
			wantOK:         true,
			wantStart:      "1.2.3-rc",
			wantPrerelease: "001",
		},
		{
			name:           "trailing newline ignored",
			input:          "10.20.30-alpha9\n",
			wantOK:         true,
			wantStart:      "10.20.30-alpha",
			wantPrerelease: "9",
		},
		{
			name:           "label with spaces and dashes",
			input:          "0.0.1-dev build-42",
			wantOK:         true,
			wantStart:      "0.0.1-dev build-",
			wantPrerelease: "42",
		},
		{name: "release only", input: "1.2.3"},
		{name: "not a version", input: "not-a-version"},
		{name: "empty", input: ""},
		{name: "label missing", input: "1.2.3-007"},
		{name: "counter missing", input: "1.2.3-beta"},
		{name: "plus in label", input: "1.2.3-be+ta1"},
		{name: "two components", input: "1.2-beta1"},
		{name: "leading v", input: "v1.2.3-beta1"},
		{name: "leading space", input: " 1.2.3-beta1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantPrerelease, got.Prerelease)
		})
	}
}

func TestParse_ASCIIDigitsOnly(t *testing.T) {
	// U+0663 and U+0661 are ARABIC-INDIC digits three and one.
	_, ok := Parse("1.2.3-rc\u0663")
	assert.False(t, ok, "a non-ASCII digit is not a counter")

	_, ok = Parse("\u0661.2.3-rc1")
	assert.False(t, ok, "a non-ASCII digit is not a release component")

	v, ok := Parse("1.2.3-rc\u06635")
	require.True(t, ok)
	assert.Equal(t, "1.2.3-rc\u0663", v.Start, "a non-ASCII digit belongs to the label")
	assert.Equal(t, "5", v.Prerelease)

	_, ok = Next("1.2.3-rc\u0663")
	assert.False(t, ok)
}

func TestNext(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"1.2.3-beta007", "1.2.3-beta008", true},
		{"1.2.3-rc009", "1.2.3-rc010", true},
		{"1.2.3-rc999", "1.2.3-rc1000", true},
		{"1.2.3-rc9", "1.2.3-rc10", true},
		{"1.2.3-rc0", "1.2.3-rc1", true},
		{"1.2.3-rc000", "1.2.3-rc001", true},
		{"1.2.3-rc001+build.5", "1.2.3-rc002", true},
		{"1.2.3-rc1 trailing text", "1.2.3-rc2", true},
		{"1.2.3", "", false},
		{"not-a-version", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Next(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_Sequential(t *testing.T) {
	first, ok := Next("1.2.3-beta007")
	require.True(t, ok)
	second, ok := Next(first)
	require.True(t, ok)

	assert.Equal(t, "1.2.3-beta008", first)
	assert.Equal(t, "1.2.3-beta009", second)
	assert.NotEqual(t, first, second)
}

func TestIncrement_LargeCounter(t *testing.T) {
	v := MustParse("1.0.0-rc18446744073709551615")

	next := v.Increment()

	assert.Equal(t, "1.0.0-rc18446744073709551616", next.String())
	want := new(big.Int).Add(v.Counter(), big.NewInt(1))
	assert.Equal(t, 0, want.Cmp(next.Counter()))
}

func TestParsedVersion_Accessors(t *testing.T) {
	v := MustParse("4.5.6-beta.007")

	assert.Equal(t, "4.5.6", v.Release())
	assert.Equal(t, "beta.", v.Label())
	assert.Equal(t, 3, v.Width())
	assert.Equal(t, int64(7), v.Counter().Int64())
	assert.Equal(t, "4.5.6-beta.007", v.String())
	assert.True(t, v.IsValid())
}

func TestParsedVersion_IsValid(t *testing.T) {
	tests := []struct {
		name string
		v    ParsedVersion
		want bool
	}{
		{"parsed", MustParse("1.2.3-rc1"), true},
		{"zero value", ParsedVersion{}, false},
		{"missing counter", ParsedVersion{Start: "1.2.3-rc"}, false},
		{"non numeric counter", ParsedVersion{Start: "1.2.3-rc", Prerelease: "x1"}, false},
		{"start ends with digit", ParsedVersion{Start: "1.2.3-rc1", Prerelease: "2"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.IsValid())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("1.2.3") })
	assert.NotPanics(t, func() { MustParse("1.2.3-rc1") })
}
