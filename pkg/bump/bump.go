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
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/verbump/pkg/checksum"
	cerrors "github.com/NVIDIA/verbump/pkg/errors"
	"github.com/NVIDIA/verbump/pkg/file"
	"github.com/NVIDIA/verbump/pkg/version"
)

// Option configures a Bumper.
type Option func(*Bumper)

// Bumper increments the prerelease counter held in version files.
type Bumper struct {
	reader      *file.Reader
	dryRun      bool
	runID       string
	concurrency int
}

// WithDryRun computes results without writing any file.
func WithDryRun(dryRun bool) Option {
	return func(b *Bumper) {
		b.dryRun = dryRun
	}
}

// WithRunID sets the identifier attached to results and log records.
// Default is a random UUID.
func WithRunID(id string) Option {
	return func(b *Bumper) {
		if id != "" {
			b.runID = id
		}
	}
}

// WithReader sets the reader used to load version files.
func WithReader(r *file.Reader) Option {
	return func(b *Bumper) {
		if r != nil {
			b.reader = r
		}
	}
}

// WithConcurrency bounds how many files BumpAll processes at once.
// Default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(b *Bumper) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// New creates a Bumper with the provided options.
func New(opts ...Option) *Bumper {
	b := &Bumper{
		reader:      file.NewReader(),
		runID:       uuid.NewString(),
		concurrency: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RunID returns the identifier attached to results.
func (b *Bumper) RunID() string {
	return b.runID
}

// DryRun reports whether writes are skipped.
func (b *Bumper) DryRun() bool {
	return b.dryRun
}

// Bump increments the prerelease counter in the version file at path using
// a default Bumper.
func Bump(ctx context.Context, path string) (*Result, error) {
	return New().Bump(ctx, path)
}

// Bump reads the first line of the file at path and, if it carries a numeric
// prerelease counter, overwrites the whole file with the incremented version.
// A first line without a counter leaves the file untouched and is reported as
// StatusUnmatched with a nil error. File access failures are returned as
// errors and no write is attempted after a failed read.
func (b *Bumper) Bump(ctx context.Context, path string) (*Result, error) {
	start := time.Now()
	res, err := b.bump(ctx, path)
	observe(res, err, time.Since(start))
	if err != nil {
		b.logger().Error("version bump failed", "path", path, "error", err)
		return nil, err
	}
	return res, nil
}

func (b *Bumper) bump(ctx context.Context, path string) (*Result, error) {
	res, parsed, err := b.load(ctx, path)
	if err != nil {
		return nil, err
	}

	if parsed == nil {
		res.Status = StatusUnmatched
		b.logger().Info("no prerelease counter found, leaving file unchanged",
			"path", path,
			"line", res.Previous)
		return res, nil
	}

	if b.dryRun {
		res.Status = StatusWouldBump
		b.logger().Info("dry run, skipping write",
			"path", path,
			"previous", res.Previous,
			"current", res.Current)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeTimeout, "bump cancelled before write", err,
			map[string]any{"path": path})
	}

	if err := file.Write(path, res.Current); err != nil {
		return nil, err
	}

	res.Status = StatusBumped
	b.logger().Info("version bumped",
		"path", path,
		"previous", res.Previous,
		"current", res.Current)
	return res, nil
}

// Inspect reads and parses the version file at path without writing it.
// Matching files are reported as StatusMatched with Current set to what a
// bump would write; FileDigest covers the whole file.
func (b *Bumper) Inspect(ctx context.Context, path string) (*Result, error) {
	res, parsed, err := b.load(ctx, path)
	if err != nil {
		return nil, err
	}

	res.Status = StatusUnmatched
	if parsed != nil {
		res.Status = StatusMatched
	}

	digest, err := checksum.FileDigest(ctx, path)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.CodeForFileError(err), "failed to digest version file", err,
			map[string]any{"path": path})
	}
	res.FileDigest = digest

	return res, nil
}

// load reads and parses the first line. parsed is nil when the line does not match.
func (b *Bumper) load(ctx context.Context, path string) (*Result, *version.ParsedVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, cerrors.WrapWithContext(cerrors.ErrCodeTimeout, "bump cancelled before read", err,
			map[string]any{"path": path})
	}

	line, err := b.reader.ReadFirstLine(path)
	if err != nil {
		return nil, nil, err
	}

	res := &Result{
		Path:           path,
		Previous:       strings.TrimRight(line, "\r\n"),
		PreviousDigest: checksum.DigestString(line),
		RunID:          b.runID,
	}

	parsed, ok := version.Parse(line)
	if !ok {
		return res, nil, nil
	}

	next := parsed.Increment().String()
	res.Parsed = &parsed
	res.Release = parsed.Release()
	res.Label = parsed.Label()
	res.Current = next
	res.CurrentDigest = checksum.DigestString(next)

	return res, &parsed, nil
}

// BumpAll bumps several version files concurrently. Paths naming the same
// file are processed once, so a single call never races with itself.
// Results follow the order in which each distinct file first appears.
// The first error cancels files that have not started and is returned;
// files already rewritten stay rewritten.
func (b *Bumper) BumpAll(ctx context.Context, paths []string) ([]*Result, error) {
	unique, err := distinctPaths(paths)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range unique {
		g.Go(func() error {
			res, err := b.Bump(gctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// distinctPaths drops paths that resolve to a file already listed.
func distinctPaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "no version files given")
	}

	seen := make(map[string]bool, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "file path cannot be empty")
		}

		key := canonicalPath(p)
		if seen[key] {
			slog.Debug("skipping duplicate version file", "path", p, "resolved", key)
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique, nil
}

func canonicalPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// IsFileAccessError reports whether err is a failure to open, read or write
// a version file, as opposed to cancellation or invalid input.
func IsFileAccessError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}

func (b *Bumper) logger() *slog.Logger {
	return slog.Default().With("run_id", b.runID)
}
