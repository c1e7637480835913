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

// Package serializer writes bump reports in JSON, YAML or table form.
//
// Usage:
//
//	writer, err := serializer.NewFileWriter(serializer.FormatYAML, "report.yaml")
//	if err != nil {
//		return err
//	}
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// The table format flattens nested structures into dotted keys:
//
//	FIELD                 VALUE
//	-----                 -----
//	Results.[0].Current   1.2.3-beta008
package serializer

import "context"

// Serializer is an interface for serializing report data.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
