/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/verbump/pkg/logging"
)

const (
	name           = "verbump"
	versionDefault = "dev"
)

// Exit codes returned by Execute.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Increment the numeric prerelease counter in a version file",
		Description: `verbump rewrites a version file whose first line looks like
MAJOR.MINOR.PATCH-LABELdigits, incrementing the digits:

  1.2.3-beta007        -> 1.2.3-beta008
  1.2.3-rc999          -> 1.2.3-rc1000
  1.2.3-rc001+build.5  -> 1.2.3-rc002

A first line without a numeric prerelease counter is left untouched and the
command still succeeds.

Without --file, the version file is version.txt in the parent of the
directory holding the verbump binary.`,
		Flags:    rootFlags(),
		Action:   runBump,
		Commands: []*cli.Command{bumpCmd(), showCmd()},
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	// replaced once flags and config are loaded
	logging.SetDefaultStructuredLogger(name, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCancelled
	default:
		return ExitError
	}
}
