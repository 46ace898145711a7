// Copyright (c) 2025, the mqstatus authors.  All rights reserved.
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

// Package metrics holds the suite's self-instrumentation. Each invocation is
// a short-lived batch process, so nothing is exposed over HTTP; the counters
// feed the debug summary logged at the end of a run and keep the
// instrumentation in place for embedders that wire their own registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CollectionDuration observes the wall time of one complete collection
	// batch per status kind.
	CollectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mqstatus_collection_duration_seconds",
			Help:    "Time taken to collect one complete status batch",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"kind"},
	)

	// QueryFailures counts per-resource administrative queries that degraded
	// to sentinel rows.
	QueryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mqstatus_query_failures_total",
			Help: "Administrative queries that failed and produced sentinel rows",
		},
		[]string{"kind"},
	)

	// RowsDropped counts intermediate rows the assembler discarded because
	// they did not match the expected shape for the active status kind.
	RowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mqstatus_rows_dropped_total",
			Help: "Intermediate rows dropped during record assembly",
		},
		[]string{"kind"},
	)

	// RecordsEmitted gauges the size of the last emitted record set.
	RecordsEmitted = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mqstatus_records_emitted",
			Help: "Number of records in the last emitted batch",
		},
		[]string{"kind"},
	)
)
