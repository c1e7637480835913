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

// Package bump increments the numeric prerelease counter stored in a version file.
//
// # Overview
//
// A bump is one read-transform-write cycle:
//
//  1. Read the first line of the file.
//  2. Match it against version.Pattern.
//  3. Without a match, stop: the file is left byte for byte unchanged and
//     the result has StatusUnmatched. This is not an error.
//  4. Otherwise increment the counter, keeping its width as a minimum.
//  5. Overwrite the whole file with the new version string (no trailing
//     newline) and sync it.
//
// Anything after the counter digits on the first line, and every following
// line, is dropped by the rewrite:
//
//	1.2.3-beta007        -> 1.2.3-beta008
//	1.2.3-rc999          -> 1.2.3-rc1000
//	1.2.3-rc001+build.5  -> 1.2.3-rc002
//	1.2.3                -> (unchanged)
//
// # Usage
//
//	res, err := bump.Bump(ctx, "version.txt")
//	if err != nil {
//	    // missing, unreadable or unwritable file
//	}
//	if res.Changed() {
//	    fmt.Println(res.Current)
//	}
//
// Several files:
//
//	b := bump.New(bump.WithDryRun(true))
//	results, err := b.BumpAll(ctx, []string{"a/version.txt", "b/version.txt"})
//
// # Concurrency
//
// A single Bump is synchronous. BumpAll processes distinct files in parallel
// and collapses paths that resolve to the same file. Nothing guards against
// two processes bumping the same file, and the rewrite is not atomic.
//
// # Metrics
//
// Outcomes and durations are recorded in Registry and can be exported with
// WriteMetrics:
//
//	verbump_bumps_total{status="bumped|unmatched|would-bump|error"}
//	verbump_bump_duration_seconds
package bump
