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
	"fmt"
	"strconv"

	"github.com/mqops/mqstatus/pkg/metrics"
	"github.com/mqops/mqstatus/pkg/mqsc"
	"github.com/mqops/mqstatus/pkg/record"
	"github.com/mqops/mqstatus/pkg/row"
)

// DeadLetterCollector reports each active manager's dead-letter queue name
// and current depth. Depth -1 means no DLQ is configured or the depth could
// not be determined; the DLQ name may be empty.
type DeadLetterCollector struct {
	Runner   *Runner
	Managers []string
}

// Kind implements the Collector interface.
func (c *DeadLetterCollector) Kind() record.Kind {
	return record.KindDeadLetter
}

// Collect resolves the DLQ name per manager and, when one is configured,
// queries its current depth. Per-manager failures degrade to the -1 sentinel
// and never abort the batch.
func (c *DeadLetterCollector) Collect(ctx context.Context) ([]row.Row, error) {
	rows := make([]row.Row, 0, len(c.Managers))

	for _, name := range c.Managers {
		if !record.ValidName(name) {
			rows = append(rows, row.Row{row.Sanitize(name), record.InvalidTag, ""})
			continue
		}

		dlq := c.deadLetterName(ctx, name)

		depth := record.DepthUnavailable
		if dlq != "" {
			depth = c.queueDepth(ctx, name, dlq)
		}

		rows = append(rows, row.Row{name, strconv.Itoa(depth), dlq})
	}

	return rows, nil
}

// deadLetterName resolves the manager's configured DLQ name, or "" when none
// is configured or the query failed. The name is re-derived on every
// invocation rather than cached: a stale name would silently point the depth
// query at the wrong queue after an administrator changes DEADQ.
func (c *DeadLetterCollector) deadLetterName(ctx context.Context, manager string) string {
	out, err := c.Runner.Mqsc(ctx, manager, "DIS QMGR DEADQ")
	if err != nil {
		metrics.QueryFailures.WithLabelValues(string(c.Kind())).Inc()
	}

	stanzas := mqsc.NewParser("QMNAME", mqsc.WithFields("DEADQ")).Parse(out)
	if len(stanzas) == 0 {
		return ""
	}

	dlq := stanzas[0].Get("DEADQ", "")
	if dlq != "" && !record.ValidName(dlq) {
		return ""
	}
	return dlq
}

// queueDepth returns the queue's CURDEPTH, or the -1 sentinel when the field
// is absent or unparsable.
func (c *DeadLetterCollector) queueDepth(ctx context.Context, manager, queue string) int {
	out, err := c.Runner.Mqsc(ctx, manager, fmt.Sprintf("DIS QLOCAL(%s) CURDEPTH", queue))
	if err != nil {
		metrics.QueryFailures.WithLabelValues(string(c.Kind())).Inc()
	}

	stanzas := mqsc.NewParser("QUEUE", mqsc.WithFields("CURDEPTH")).Parse(out)
	if len(stanzas) == 0 {
		return record.DepthUnavailable
	}

	depth, err := strconv.Atoi(stanzas[0].Get("CURDEPTH", ""))
	if err != nil || depth < 0 {
		return record.DepthUnavailable
	}
	return depth
}
