/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/verbump/pkg/config"
	"github.com/NVIDIA/verbump/pkg/logging"
	"github.com/NVIDIA/verbump/pkg/serializer"
)

const defaultLogLevel = "warn"

const (
	configFlagName      = "config"
	logLevelFlagName    = "log-level"
	fileFlagName        = "file"
	dryRunFlagName      = "dry-run"
	formatFlagName      = "format"
	outputFlagName      = "output"
	metricsFileFlagName = "metrics-file"
)

// rootFlags builds fresh flag instances; urfave flags keep parse state, so
// they are not shared between command trees.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlagName,
			Aliases: []string{"c"},
			Usage:   "YAML config file listing version files and defaults",
			Sources: cli.EnvVars("VERBUMP_CONFIG"),
		},
		&cli.StringFlag{
			Name:    logLevelFlagName,
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvLogLevel),
			Value:   defaultLogLevel,
		},
		&cli.StringSliceFlag{
			Name:    fileFlagName,
			Aliases: []string{"f"},
			Usage:   "version file to process, can be repeated (default: ../version.txt relative to the binary)",
			Sources: cli.EnvVars("VERBUMP_FILE"),
		},
		&cli.BoolFlag{
			Name:  dryRunFlagName,
			Usage: "compute the new version without writing the file",
		},
		&cli.StringFlag{
			Name:    formatFlagName,
			Aliases: []string{"t"},
			Usage: fmt.Sprintf("print a report in this format (supported values: %s)",
				strings.Join(serializer.SupportedFormats(), ", ")),
		},
		&cli.StringFlag{
			Name:    outputFlagName,
			Aliases: []string{"o"},
			Usage:   "write the report to this file instead of stdout (implies --format yaml)",
		},
		&cli.StringFlag{
			Name:    metricsFileFlagName,
			Usage:   "write Prometheus metrics in text format to this file",
			Sources: cli.EnvVars("VERBUMP_METRICS_FILE"),
		},
	}
}

// options is the merged view of flags, environment and config file.
type options struct {
	runID       string
	files       []string
	dryRun      bool
	format      serializer.Format
	output      string
	metricsFile string
	logLevel    string
}

// loadOptions merges settings with flag > env > config file > default
// precedence and installs the default logger.
func loadOptions(cmd *cli.Command) (*options, error) {
	cfg := config.NewConfig()
	if path := cmd.String(configFlagName); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	opts := &options{
		runID:       uuid.NewString(),
		dryRun:      cfg.DryRun(),
		metricsFile: cfg.MetricsFile(),
		logLevel:    cmd.String(logLevelFlagName),
		output:      cmd.String(outputFlagName),
	}

	if !cmd.IsSet(logLevelFlagName) && cfg.LogLevel() != "" {
		opts.logLevel = cfg.LogLevel()
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.logLevel)

	if cmd.IsSet(dryRunFlagName) {
		opts.dryRun = cmd.Bool(dryRunFlagName)
	}
	if cmd.IsSet(metricsFileFlagName) {
		opts.metricsFile = cmd.String(metricsFileFlagName)
	}

	switch {
	case cmd.IsSet(fileFlagName):
		opts.files = cmd.StringSlice(fileFlagName)
	case len(cfg.Files()) > 0:
		opts.files = cfg.Files()
	default:
		path, err := config.DefaultVersionFile()
		if err != nil {
			return nil, err
		}
		opts.files = []string{path}
	}

	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	opts.format = format
	if opts.format == "" && opts.output != "" {
		opts.format = serializer.FormatYAML
	}

	slog.Debug("options loaded",
		"run_id", opts.runID,
		"files", opts.files,
		"dry_run", opts.dryRun,
		"format", opts.format,
		"output", opts.output,
		"metrics_file", opts.metricsFile)

	return opts, nil
}

// parseOutputFormat returns the --format value, or "" when it was not given.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	value := cmd.String(formatFlagName)
	if value == "" {
		return "", nil
	}
	return serializer.ParseFormat(value)
}

// writeReport serializes data to --output or the root command's writer.
func writeReport(ctx context.Context, cmd *cli.Command, opts *options, data any) error {
	if opts.output == "" {
		return serializer.NewWriter(opts.format, cmd.Root().Writer).Serialize(ctx, data)
	}

	w, err := serializer.NewFileWriter(opts.format, opts.output)
	if err != nil {
		return err
	}
	if err := w.Serialize(ctx, data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
