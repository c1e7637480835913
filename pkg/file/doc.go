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

// Package file reads and rewrites version files.
//
// # Usage
//
// Read the first line:
//
//	r := file.NewReader(file.WithMaxLineSize(4096))
//	line, err := r.ReadFirstLine("version.txt")
//
// Replace the whole file:
//
//	if err := file.Write("version.txt", "1.2.3-beta008"); err != nil {
//	    // Handle error
//	}
//
// Each call opens, uses and closes its own handle.
//
// # Error Handling
//
// Errors are *errors.StructuredError values whose code reflects the
// filesystem failure (NOT_FOUND, UNAUTHORIZED, INTERNAL) and whose cause is
// the original *fs.PathError:
//
//	_, err := r.ReadFirstLine("/nonexistent")
//	errors.Is(err, fs.ErrNotExist) // true
package file
