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
	"strconv"
	"strings"

	"github.com/mqops/mqstatus/pkg/metrics"
	"github.com/mqops/mqstatus/pkg/mqsc"
	"github.com/mqops/mqstatus/pkg/record"
	"github.com/mqops/mqstatus/pkg/row"
)

// ListenerCollector aggregates the running listeners of each active manager
// into one row per manager: a count plus an ordered, comma-joined name list.
type ListenerCollector struct {
	Runner   *Runner
	Managers []string
}

// Kind implements the Collector interface.
func (c *ListenerCollector) Kind() record.Kind {
	return record.KindListener
}

// Collect queries DIS LSSTATUS(*) per manager. Every listener stanza
// contributes one name, in output order; zero listeners still produce a row
// with count 0 and an empty list. A failed query degrades the same way.
func (c *ListenerCollector) Collect(ctx context.Context) ([]row.Row, error) {
	parser := mqsc.NewParser("LISTENER")
	rows := make([]row.Row, 0, len(c.Managers))

	for _, name := range c.Managers {
		if !record.ValidName(name) {
			rows = append(rows, row.Row{row.Sanitize(name), record.InvalidTag, ""})
			continue
		}

		out, err := c.Runner.Mqsc(ctx, name, "DIS LSSTATUS(*)")
		if err != nil {
			metrics.QueryFailures.WithLabelValues(string(c.Kind())).Inc()
		}

		stanzas := parser.Parse(out)
		names := make([]string, 0, len(stanzas))
		for _, s := range stanzas {
			// The joined list is comma-delimited, so names must be
			// comma-free internally.
			names = append(names, strings.ReplaceAll(row.Sanitize(s.Name), ",", ""))
		}

		rows = append(rows, row.Row{name, strconv.Itoa(len(names)), strings.Join(names, ",")})
	}

	return rows, nil
}
