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
	"strings"

	"github.com/mqops/mqstatus/pkg/metrics"
	"github.com/mqops/mqstatus/pkg/mqsc"
	"github.com/mqops/mqstatus/pkg/record"
	"github.com/mqops/mqstatus/pkg/row"
)

// CommandServerCollector reports the command-server state of each active
// manager. The state is string-typed on the wire ("1", "0", or "INVALID"),
// unlike the numeric manager state; the asymmetry is preserved for
// compatibility.
type CommandServerCollector struct {
	Runner   *Runner
	Managers []string
}

// Kind implements the Collector interface.
func (c *CommandServerCollector) Kind() record.Kind {
	return record.KindCommandServer
}

// Collect queries DIS QMSTATUS CMDSERV per manager, sequentially in resolver
// order. An invalid name yields an INVALID row, a failed or empty query
// yields "0"; neither aborts the batch.
func (c *CommandServerCollector) Collect(ctx context.Context) ([]row.Row, error) {
	parser := mqsc.NewParser("QMNAME", mqsc.WithFields("CMDSERV"))
	rows := make([]row.Row, 0, len(c.Managers))

	for _, name := range c.Managers {
		if !record.ValidName(name) {
			rows = append(rows, row.Row{row.Sanitize(name), record.InvalidTag})
			continue
		}

		out, err := c.Runner.Mqsc(ctx, name, "DIS QMSTATUS CMDSERV")
		if err != nil {
			metrics.QueryFailures.WithLabelValues(string(c.Kind())).Inc()
		}

		status := "0"
		if stanzas := parser.Parse(out); len(stanzas) > 0 &&
			strings.EqualFold(stanzas[0].Get("CMDSERV", ""), "RUNNING") {
			status = "1"
		}
		rows = append(rows, row.Row{name, status})
	}

	return rows, nil
}
