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

package file

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	cerrors "github.com/NVIDIA/verbump/pkg/errors"
)

const (
	// DefaultMaxLineSize bounds how much of the first line is read.
	DefaultMaxLineSize = 1 << 20 // 1MB

	// newFileMode is used only when Write has to create the file.
	newFileMode os.FileMode = 0o644
)

// Option configures a Reader.
type Option func(*Reader)

// Reader reads version files.
type Reader struct {
	maxLineSize int
}

// WithMaxLineSize sets the maximum size (in bytes) of the first line.
// Default is 1MB. Non-positive values are ignored.
func WithMaxLineSize(size int) Option {
	return func(r *Reader) {
		if size > 0 {
			r.maxLineSize = size
		}
	}
}

// NewReader creates a new Reader with the provided options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		maxLineSize: DefaultMaxLineSize,
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxLineSize returns the configured first-line limit.
func (r *Reader) MaxLineSize() int {
	return r.maxLineSize
}

// ReadFirstLine returns the first line of the file at path, including its
// line terminator if there is one. "\n", "\r\n" and a lone "\r" all end a
// line. An empty file yields an empty string.
// The file handle is closed before returning.
func (r *Reader) ReadFirstLine(path string) (string, error) {
	if path == "" {
		return "", cerrors.New(cerrors.ErrCodeInvalidRequest, "file path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", cerrors.WrapWithContext(cerrors.CodeForFileError(err),
			"failed to open version file", err, map[string]any{"path": path, "op": "read"})
	}
	defer f.Close()

	// one extra byte tells an over-long line apart from one of exactly maxLineSize
	br := bufio.NewReader(io.LimitReader(f, int64(r.maxLineSize)+1))
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", cerrors.WrapWithContext(cerrors.CodeForFileError(err),
			"failed to read version file", err, map[string]any{"path": path, "op": "read"})
	}

	line = cutAtCarriageReturn(line)

	if len(line) > r.maxLineSize {
		return "", cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			"first line exceeds maximum size", map[string]any{"path": path, "max_size": r.maxLineSize})
	}

	slog.Debug("read version file", "path", path, "bytes", len(line))
	return line, nil
}

// cutAtCarriageReturn shortens line to end at its first '\r', keeping a
// "\r\n" pair intact.
func cutAtCarriageReturn(line string) string {
	i := strings.IndexByte(line, '\r')
	if i < 0 {
		return line
	}
	if i+1 < len(line) && line[i+1] == '\n' {
		return line[:i+2]
	}
	return line[:i+1]
}

// Write replaces the entire content of the file at path and syncs it to
// stable storage before closing. The replacement is not atomic: a crash
// mid-write can leave the file truncated.
func Write(path, content string) (err error) {
	if path == "" {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "file path cannot be empty")
	}

	wrap := func(msg string, cause error) error {
		return cerrors.WrapWithContext(cerrors.CodeForFileError(cause), msg, cause,
			map[string]any{"path": path, "op": "write"})
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, newFileMode)
	if err != nil {
		return wrap("failed to open version file for writing", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = wrap("failed to close version file", cerr)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return wrap("failed to write version file", err)
	}
	if err := f.Sync(); err != nil {
		return wrap("failed to sync version file", err)
	}

	slog.Debug("wrote version file", "path", path, "bytes", len(content))
	return nil
}
