/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/verbump/pkg/bump"
	"github.com/NVIDIA/verbump/pkg/serializer"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Show the parsed version and the next version without writing",
		Description: `Parse the first line of each version file and report the current version,
its prerelease counter, the version a bump would write and a SHA256 digest of
the whole file. Files are never modified.

The report is printed as YAML unless --format says otherwise.`,
		Action: runShow,
	}
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if opts.format == "" {
		opts.format = serializer.FormatYAML
	}

	b := bump.New(bump.WithRunID(opts.runID))

	results := make([]*bump.Result, 0, len(opts.files))
	for _, path := range opts.files {
		res, err := b.Inspect(ctx, path)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	return writeReport(ctx, cmd, opts, &bump.Report{RunID: opts.runID, Results: results})
}
