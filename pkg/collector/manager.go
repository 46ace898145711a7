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

package collector

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mqops/mqstatus/pkg/metrics"
	"github.com/mqops/mqstatus/pkg/mqsc"
	"github.com/mqops/mqstatus/pkg/record"
	"github.com/mqops/mqstatus/pkg/registry"
	"github.com/mqops/mqstatus/pkg/row"
)

// ManagerCollector reports the run state of every queue manager known to the
// installation and rewrites the shared registry with the result. It is the
// only registry writer; every other collector is a reader.
type ManagerCollector struct {
	Runner       *Runner
	RegistryPath string
}

// Kind implements the Collector interface.
func (c *ManagerCollector) Kind() record.Kind {
	return record.KindManager
}

// Collect runs dspmq, maps each manager's STATUS to its numeric state, and
// atomically replaces the registry snapshot.
//
// A dspmq failure yields an empty batch, not an error: the registry is still
// replaced (with no entries) so downstream collectors see the freshest truth
// rather than a stale manager list.
func (c *ManagerCollector) Collect(ctx context.Context) ([]row.Row, error) {
	out, err := c.Runner.Dspmq(ctx)
	if err != nil {
		metrics.QueryFailures.WithLabelValues(string(c.Kind())).Inc()
		slog.Debug("dspmq query failed, emitting empty batch",
			slog.String("error", err.Error()))
	}

	stanzas := mqsc.NewParser("QMNAME", mqsc.WithFields("STATUS")).Parse(out)

	rows := make([]row.Row, 0, len(stanzas))
	entries := make([]registry.Entry, 0, len(stanzas))

	for _, s := range stanzas {
		state := managerState(s.Get("STATUS", ""))
		rows = append(rows, row.Row{row.Sanitize(s.Name), strconv.Itoa(state)})

		// A name that fails validation can never be queried by the
		// per-manager collectors, so it must not enter the registry.
		if record.ValidName(s.Name) {
			entries = append(entries, registry.Entry{Manager: s.Name, Status: state})
		} else {
			slog.Debug("excluding invalid manager name from registry",
				slog.String("name", s.Name))
		}
	}

	if err := registry.Replace(c.RegistryPath, entries); err != nil {
		return nil, err
	}

	return rows, nil
}

// managerState maps a dspmq STATUS value (whitespace already stripped by the
// parser) to the wire state. Anything that is not running, primary or
// standby, reports as not running.
func managerState(status string) int {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "standby"):
		return record.StateStandbyRunning
	case s == "running":
		return record.StateRunning
	default:
		return record.StateNotRunning
	}
}
