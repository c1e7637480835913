/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/verbump/pkg/bump"
)

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Increment the prerelease counter (default command)",
		Description: `Read the first line of each version file and, when it carries a numeric
prerelease counter, overwrite the file with the counter incremented by one.

The counter keeps its zero padding and widens only when it has to. Anything
after the counter, and any further lines, are not preserved.

# Examples

Bump the project version file next to the binary:
  verbump

Bump explicit files and print a report:
  verbump bump --file version.txt --file firmware/version.txt --format table

Preview without writing:
  verbump bump --file version.txt --dry-run --format json

Export metrics for the node_exporter textfile collector:
  verbump bump --metrics-file /var/lib/node_exporter/textfile/verbump.prom`,
		Action: runBump,
	}
}

func runBump(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	b := bump.New(
		bump.WithRunID(opts.runID),
		bump.WithDryRun(opts.dryRun),
	)

	results, bumpErr := b.BumpAll(ctx, opts.files)

	if opts.metricsFile != "" {
		if err := bump.WriteMetrics(opts.metricsFile); err != nil {
			if bumpErr != nil {
				slog.Error("failed to write metrics", "error", err)
				return bumpErr
			}
			return err
		}
	}

	if bumpErr != nil {
		return bumpErr
	}

	if opts.format == "" {
		return nil
	}
	return writeReport(ctx, cmd, opts, &bump.Report{RunID: opts.runID, Results: results})
}
