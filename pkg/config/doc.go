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

// Package config provides run configuration for verbump.
//
// # Default Version File
//
// Without explicit files, verbump bumps the version file one directory above
// the directory holding its own binary:
//
//	/src/project/bin/verbump   ->   /src/project/version.txt
//
// Symlinks to the binary are resolved first, so a link on PATH still finds
// the project it was built for.
//
// # Config File
//
//	files:
//	  - version.txt
//	  - firmware/version.txt
//	logLevel: warn
//	metricsFile: /var/lib/node_exporter/textfile/verbump.prom
//	dryRun: false
//
// Relative paths resolve against the config file's directory.
//
// # Usage
//
//	cfg, err := config.Load(".verbump.yaml")
//	if err != nil {
//	    return err
//	}
//	files := cfg.Files()
package config
