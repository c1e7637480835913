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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	cerrors "github.com/NVIDIA/verbump/pkg/errors"
)

// DefaultVersionFileName is the version file looked up next to the project root.
const DefaultVersionFileName = "version.txt"

var validLogLevels = map[string]bool{
	"":        true,
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Config provides settings for a verbump run.
// Fields are private; use the getters and functional options.
type Config struct {
	// files lists the version files to bump. Empty means the default file.
	files []string

	// logLevel overrides the log level when set.
	logLevel string

	// metricsFile is where Prometheus metrics are written, if set.
	metricsFile string

	// dryRun skips writes.
	dryRun bool
}

// Option is a functional option for configuring Config instances.
type Option func(*Config)

// WithFiles sets the version files to bump.
func WithFiles(files ...string) Option {
	return func(c *Config) {
		c.files = append([]string(nil), files...)
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.logLevel = level
	}
}

// WithMetricsFile sets the Prometheus textfile destination.
func WithMetricsFile(path string) Option {
	return func(c *Config) {
		c.metricsFile = path
	}
}

// WithDryRun enables or disables dry runs.
func WithDryRun(dryRun bool) Option {
	return func(c *Config) {
		c.dryRun = dryRun
	}
}

// NewConfig returns a Config with the given options applied.
func NewConfig(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Files returns a copy of the configured version files.
func (c *Config) Files() []string {
	return append([]string(nil), c.files...)
}

// LogLevel returns the log level setting.
func (c *Config) LogLevel() string {
	return c.logLevel
}

// MetricsFile returns the metrics destination.
func (c *Config) MetricsFile() string {
	return c.metricsFile
}

// DryRun returns the dry-run setting.
func (c *Config) DryRun() bool {
	return c.dryRun
}

// Validate checks if the Config has valid settings.
func (c *Config) Validate() error {
	if !validLogLevels[strings.ToLower(c.logLevel)] {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.logLevel),
			map[string]any{"logLevel": c.logLevel})
	}
	for i, f := range c.files {
		if strings.TrimSpace(f) == "" {
			return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
				"version file path cannot be empty", map[string]any{"index": i})
		}
	}
	return nil
}

// fileConfig is the on-disk YAML form.
type fileConfig struct {
	Files       []string `yaml:"files"`
	LogLevel    string   `yaml:"logLevel"`
	MetricsFile string   `yaml:"metricsFile"`
	DryRun      bool     `yaml:"dryRun"`
}

// Load reads a YAML config file. Unknown keys are rejected. Relative
// paths in files and metricsFile resolve against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.CodeForFileError(err), "failed to read config file", err,
			map[string]any{"path": path})
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest, "failed to parse config file", err,
			map[string]any{"path": path})
	}

	base := filepath.Dir(path)
	files := make([]string, 0, len(fc.Files))
	for _, f := range fc.Files {
		files = append(files, resolve(base, f))
	}

	c := NewConfig(
		WithFiles(files...),
		WithLogLevel(fc.LogLevel),
		WithMetricsFile(resolve(base, fc.MetricsFile)),
		WithDryRun(fc.DryRun),
	)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func resolve(base, p string) string {
	if strings.TrimSpace(p) == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// ResolveVersionFile returns the version file for a tool installed at
// executable: the file named DefaultVersionFileName in the parent of the
// directory holding the real (symlink-resolved) executable.
func ResolveVersionFile(executable string) (string, error) {
	resolved, err := filepath.EvalSymlinks(executable)
	if err != nil {
		return "", cerrors.WrapWithContext(cerrors.CodeForFileError(err), "failed to resolve executable path", err,
			map[string]any{"executable": executable})
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInternal, "failed to resolve executable path", err)
	}
	return filepath.Join(filepath.Dir(resolved), "..", DefaultVersionFileName), nil
}

// DefaultVersionFile resolves the version file relative to the running binary.
func DefaultVersionFile() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInternal, "failed to locate executable", err)
	}
	return ResolveVersionFile(exe)
}
