// Package cli implements the command-line interface for verbump.
//
// # Overview
//
// verbump increments the numeric prerelease counter held in the first line
// of a version file. It is meant to run from build scripts, so a successful
// run prints nothing unless a report is requested.
//
// # Commands
//
// bump - Increment the counter (also the default action):
//
//	verbump [bump] [--file FILE]... [--dry-run] [--format json|yaml|table] [--output FILE]
//
// show - Report the parsed version and the next version without writing:
//
//	verbump show [--file FILE]... [--format json|yaml|table]
//
// # Global Flags
//
//	--config, -c        YAML config file (env VERBUMP_CONFIG)
//	--log-level         debug, info, warn, error (env LOG_LEVEL, default warn)
//	--file, -f          Version file, repeatable (env VERBUMP_FILE)
//	--dry-run           Compute without writing
//	--format, -t        Report format: json, yaml, table
//	--output, -o        Report destination (default: stdout)
//	--metrics-file      Prometheus textfile destination (env VERBUMP_METRICS_FILE)
//
// Flags override environment variables, which override the config file.
//
// # Default Version File
//
// Without --file or a config file, verbump bumps version.txt in the parent of
// the directory holding its binary, e.g. /src/project/ota/verbump bumps
// /src/project/version.txt.
//
// # Exit Codes
//
//	0  Success, including a version file without a prerelease counter
//	1  General error (missing or inaccessible file, invalid flags or config)
//	2  Context canceled (SIGINT/SIGTERM)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/verbump/pkg/cli.version=1.0.0'"
package cli
