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
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry holds the bump metrics only, so a textfile export does not
	// carry Go runtime and process collectors.
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	bumpsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verbump_bumps_total",
			Help: "Total number of version files processed, by outcome",
		},
		[]string{"status"},
	)

	bumpDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "verbump_bump_duration_seconds",
			Help:    "Duration of a single version file bump in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
	)
)

func observe(res *Result, err error, elapsed time.Duration) {
	bumpDuration.Observe(elapsed.Seconds())

	status := StatusError
	if err == nil && res != nil {
		status = res.Status
	}
	bumpsTotal.WithLabelValues(status.String()).Inc()
}

// WriteMetrics writes the bump metrics to path in the Prometheus text
// exposition format, for pickup by a node_exporter textfile collector.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
