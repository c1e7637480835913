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

package bump

import (
	"github.com/NVIDIA/verbump/pkg/version"
)

// Status is the outcome of processing one version file.
type Status string

const (
	// StatusBumped means the file was rewritten with an incremented counter.
	StatusBumped Status = "bumped"
	// StatusUnmatched means the first line carried no numeric prerelease
	// counter and the file was left untouched. This is not an error.
	StatusUnmatched Status = "unmatched"
	// StatusWouldBump means a dry run found a counter but skipped the write.
	StatusWouldBump Status = "would-bump"
	// StatusMatched is reported by Inspect for a file that a bump would rewrite.
	StatusMatched Status = "matched"
	// StatusError is only used as a metrics label.
	StatusError Status = "error"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Result describes what happened to a single version file.
type Result struct {
	// Path is the version file as it was given.
	Path string `json:"path" yaml:"path"`

	// Status is the outcome.
	Status Status `json:"status" yaml:"status"`

	// Previous is the first line as read, without its line terminator.
	Previous string `json:"previous" yaml:"previous"`

	// Current is the replacement content. Empty when unmatched.
	Current string `json:"current,omitempty" yaml:"current,omitempty"`

	// Parsed holds the pre-bump parse; nil when unmatched.
	Parsed *version.ParsedVersion `json:"parsed,omitempty" yaml:"parsed,omitempty"`

	// Release is the "<major>.<minor>.<patch>" part of Previous; empty when unmatched.
	Release string `json:"release,omitempty" yaml:"release,omitempty"`

	// Label is the prerelease label ahead of the counter; empty when unmatched.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// PreviousDigest is the SHA256 of the first line as read, terminator included.
	PreviousDigest string `json:"previousDigest" yaml:"previousDigest"`

	// CurrentDigest is the SHA256 of Current. Empty when unmatched.
	CurrentDigest string `json:"currentDigest,omitempty" yaml:"currentDigest,omitempty"`

	// FileDigest is the SHA256 of the whole file, reported by Inspect only.
	FileDigest string `json:"fileDigest,omitempty" yaml:"fileDigest,omitempty"`

	// RunID identifies the invocation that produced the result.
	RunID string `json:"runId,omitempty" yaml:"runId,omitempty"`
}

// Changed reports whether the file was rewritten.
func (r *Result) Changed() bool {
	return r != nil && r.Status == StatusBumped
}

// Report is the serialized output of a command covering one or more files.
type Report struct {
	RunID   string    `json:"runId" yaml:"runId"`
	Results []*Result `json:"results" yaml:"results"`
}
