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

// systemQueuePrefix namespaces the queues MQ manages for itself; they are
// noise for application monitoring and excluded by default.
const systemQueuePrefix = "SYSTEM."

// MessageAgeCollector reports the oldest message age per queue for each
// active manager. SYSTEM.* queues and the manager's own dead-letter queue
// are excluded unless IncludeSystem is set.
type MessageAgeCollector struct {
	Runner        *Runner
	Managers      []string
	IncludeSystem bool
}

// Kind implements the Collector interface.
func (c *MessageAgeCollector) Kind() record.Kind {
	return record.KindMessageAge
}

// Collect queries DIS QSTATUS(*) MSGAGE per manager, one row per queue
// stanza. An absent or unparsable age defaults to 0; a failed query yields no
// queue rows for that manager; neither aborts the batch.
func (c *MessageAgeCollector) Collect(ctx context.Context) ([]row.Row, error) {
	parser := mqsc.NewParser("QUEUE", mqsc.WithFields("MSGAGE"))
	rows := make([]row.Row, 0, len(c.Managers))

	for _, name := range c.Managers {
		if !record.ValidName(name) {
			rows = append(rows, row.Row{row.Sanitize(name), record.InvalidTag, "0"})
			continue
		}

		// The DLQ name is re-derived per manager instead of shared with the
		// dead-letter collector so each invocation filters against the
		// currently configured queue.
		dlq := c.deadLetterName(ctx, name)

		out, err := c.Runner.Mqsc(ctx, name, "DIS QSTATUS(*) TYPE(QUEUE) MSGAGE")
		if err != nil {
			metrics.QueryFailures.WithLabelValues(string(c.Kind())).Inc()
		}

		for _, s := range parser.Parse(out) {
			if !c.IncludeSystem && c.excluded(s.Name, dlq) {
				continue
			}

			age := s.Get("MSGAGE", "0")
			if _, err := strconv.ParseUint(age, 10, 32); err != nil {
				age = "0"
			}
			rows = append(rows, row.Row{name, s.Name, age})
		}
	}

	return rows, nil
}

func (c *MessageAgeCollector) excluded(queue, dlq string) bool {
	if strings.HasPrefix(queue, systemQueuePrefix) {
		return true
	}
	return dlq != "" && queue == dlq
}

func (c *MessageAgeCollector) deadLetterName(ctx context.Context, manager string) string {
	out, err := c.Runner.Mqsc(ctx, manager, "DIS QMGR DEADQ")
	if err != nil {
		metrics.QueryFailures.WithLabelValues(string(c.Kind())).Inc()
	}

	stanzas := mqsc.NewParser("QMNAME", mqsc.WithFields("DEADQ")).Parse(out)
	if len(stanzas) == 0 {
		return ""
	}
	return stanzas[0].Get("DEADQ", "")
}
