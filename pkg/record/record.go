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

package record

import "regexp"

// Kind identifies which status view a collector produces.
type Kind string

const (
	// KindManager is the queue-manager run state view.
	KindManager Kind = "manager"
	// KindCommandServer is the command-server state view.
	KindCommandServer Kind = "cmdserver"
	// KindDeadLetter is the dead-letter queue name and depth view.
	KindDeadLetter Kind = "dlq"
	// KindMessageAge is the per-queue oldest message age view.
	KindMessageAge Kind = "msgage"
	// KindListener is the listener count and name view.
	KindListener Kind = "listener"
)

// Queue-manager run states on the wire.
const (
	StateNotRunning     = 0
	StateRunning        = 1
	StateStandbyRunning = 2
)

// InvalidTag marks resources whose name fails validation. Such resources are
// never queried but still appear in the output rather than vanishing.
const InvalidTag = "INVALID"

// DepthUnavailable is the sentinel depth reported when a manager has no
// dead-letter queue configured or the depth query failed.
const DepthUnavailable = -1

// nameExpr is the only shape a resource name may take before it is handed to
// an administrative tool.
var nameExpr = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidName reports whether name is safe to pass to the administrative tools.
func ValidName(name string) bool {
	return nameExpr.MatchString(name)
}

// ManagerStatus is the queue-manager run state record.
type ManagerStatus struct {
	Manager string `json:"Q_MANAGER" yaml:"q_manager"`
	Status  int    `json:"Q_STATUS" yaml:"q_status"`
}

// CommandServerStatus is the command-server state record. The status is
// string-typed ("1", "0", or "INVALID") while ManagerStatus is numeric; the
// asymmetry is part of the existing wire contract and deliberately preserved.
type CommandServerStatus struct {
	Manager string `json:"Q_MANAGER" yaml:"q_manager"`
	Status  string `json:"Q_STATUS" yaml:"q_status"`
}

// DeadLetterStatus is the dead-letter queue record. Status carries the queue
// depth, or DepthUnavailable when no DLQ is configured or the query failed.
// DLName may be empty.
type DeadLetterStatus struct {
	Manager string `json:"Q_MANAGER" yaml:"q_manager"`
	Status  int    `json:"Q_STATUS" yaml:"q_status"`
	DLName  string `json:"Q_DLNAME" yaml:"q_dlname"`
}

// MessageAge is the oldest-message age record for a single queue.
type MessageAge struct {
	Manager string `json:"Q_MANAGER" yaml:"q_manager"`
	Queue   string `json:"Q_NAME" yaml:"q_name"`
	Age     uint   `json:"Q_MSGAGE" yaml:"q_msgage"`
}

// ListenerStatus aggregates all listeners of one manager. Listeners is a
// comma-joined, order-preserving name list and may be empty.
type ListenerStatus struct {
	Manager   string `json:"Q_MANAGER" yaml:"q_manager"`
	Count     uint   `json:"Q_COUNT" yaml:"q_count"`
	Listeners string `json:"LISTENER" yaml:"listener"`
}
