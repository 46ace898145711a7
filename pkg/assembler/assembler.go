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

package assembler

import (
	"log/slog"
	"strconv"

	"github.com/mqops/mqstatus/pkg/metrics"
	"github.com/mqops/mqstatus/pkg/record"
	"github.com/mqops/mqstatus/pkg/row"
)

// Assemble converts intermediate rows into the typed record slice for the
// given status kind. The result is always a non-nil slice so it serializes
// as a JSON array even when empty.
//
// Rows that do not match the kind's expected shape are dropped, not fatal;
// each drop is logged on the debug channel and counted for diagnostics.
func Assemble(kind record.Kind, rows []row.Row) any {
	switch kind {
	case record.KindManager:
		return Managers(rows)
	case record.KindCommandServer:
		return CommandServers(rows)
	case record.KindDeadLetter:
		return DeadLetters(rows)
	case record.KindMessageAge:
		return MessageAges(rows)
	case record.KindListener:
		return Listeners(rows)
	default:
		drop(kind, row.Row{}, "unknown status kind")
		return []struct{}{}
	}
}

// Managers assembles queue-manager status records from [name, state] rows.
func Managers(rows []row.Row) []record.ManagerStatus {
	out := make([]record.ManagerStatus, 0, len(rows))
	for _, r := range rows {
		if len(r) != 2 {
			drop(record.KindManager, r, "expected 2 fields")
			continue
		}
		state, err := strconv.Atoi(r[1])
		if err != nil {
			drop(record.KindManager, r, "state is not numeric")
			continue
		}
		out = append(out, record.ManagerStatus{Manager: r[0], Status: state})
	}
	return out
}

// CommandServers assembles command-server records from [name, status] rows.
// Status stays a string on the wire ("1", "0", or "INVALID").
func CommandServers(rows []row.Row) []record.CommandServerStatus {
	out := make([]record.CommandServerStatus, 0, len(rows))
	for _, r := range rows {
		if len(r) != 2 {
			drop(record.KindCommandServer, r, "expected 2 fields")
			continue
		}
		switch r[1] {
		case "0", "1", record.InvalidTag:
			out = append(out, record.CommandServerStatus{Manager: r[0], Status: r[1]})
		default:
			drop(record.KindCommandServer, r, "unexpected status value")
		}
	}
	return out
}

// DeadLetters assembles dead-letter records from [name, depth, dlqName]
// rows. An INVALID depth marker (unqueryable resource name) maps to the -1
// sentinel.
func DeadLetters(rows []row.Row) []record.DeadLetterStatus {
	out := make([]record.DeadLetterStatus, 0, len(rows))
	for _, r := range rows {
		if len(r) != 3 {
			drop(record.KindDeadLetter, r, "expected 3 fields")
			continue
		}

		depth := record.DepthUnavailable
		if r[1] != record.InvalidTag {
			d, err := strconv.Atoi(r[1])
			if err != nil {
				drop(record.KindDeadLetter, r, "depth is not numeric")
				continue
			}
			depth = d
		}
		out = append(out, record.DeadLetterStatus{Manager: r[0], Status: depth, DLName: r[2]})
	}
	return out
}

// MessageAges assembles message-age records from [manager, queue, age] rows.
func MessageAges(rows []row.Row) []record.MessageAge {
	out := make([]record.MessageAge, 0, len(rows))
	for _, r := range rows {
		if len(r) != 3 {
			drop(record.KindMessageAge, r, "expected 3 fields")
			continue
		}
		age, err := strconv.ParseUint(r[2], 10, 32)
		if err != nil {
			drop(record.KindMessageAge, r, "age is not numeric")
			continue
		}
		out = append(out, record.MessageAge{Manager: r[0], Queue: r[1], Age: uint(age)})
	}
	return out
}

// Listeners assembles listener records from [manager, count, names] rows.
// An INVALID count marker maps to zero listeners.
func Listeners(rows []row.Row) []record.ListenerStatus {
	out := make([]record.ListenerStatus, 0, len(rows))
	for _, r := range rows {
		if len(r) != 3 {
			drop(record.KindListener, r, "expected 3 fields")
			continue
		}

		var count uint
		if r[1] != record.InvalidTag {
			c, err := strconv.ParseUint(r[1], 10, 32)
			if err != nil {
				drop(record.KindListener, r, "count is not numeric")
				continue
			}
			count = uint(c)
		}
		out = append(out, record.ListenerStatus{Manager: r[0], Count: count, Listeners: r[2]})
	}
	return out
}

func drop(kind record.Kind, r row.Row, reason string) {
	metrics.RowsDropped.WithLabelValues(string(kind)).Inc()
	slog.Debug("dropping malformed intermediate row",
		slog.String("kind", string(kind)),
		slog.String("reason", reason),
		slog.Int("fields", len(r)))
}
