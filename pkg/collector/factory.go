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

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateManagerCollector() Collector
	CreateCommandServerCollector() Collector
	CreateDeadLetterCollector() Collector
	CreateMessageAgeCollector() Collector
	CreateListenerCollector() Collector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// Runner executes administrative queries under the resolved identity.
	Runner *Runner
	// RegistryPath is where the manager collector writes its snapshot.
	RegistryPath string
	// Managers is the resolver output: active manager names, in registry
	// order. Unused by the manager collector, which discovers its own.
	Managers []string
	// IncludeSystem propagates the system-queue inclusion override.
	IncludeSystem bool
}

// CreateManagerCollector creates the queue-manager status collector.
func (f *DefaultFactory) CreateManagerCollector() Collector {
	return &ManagerCollector{Runner: f.Runner, RegistryPath: f.RegistryPath}
}

// CreateCommandServerCollector creates the command-server status collector.
func (f *DefaultFactory) CreateCommandServerCollector() Collector {
	return &CommandServerCollector{Runner: f.Runner, Managers: f.Managers}
}

// CreateDeadLetterCollector creates the dead-letter queue collector.
func (f *DefaultFactory) CreateDeadLetterCollector() Collector {
	return &DeadLetterCollector{Runner: f.Runner, Managers: f.Managers}
}

// CreateMessageAgeCollector creates the oldest-message age collector.
func (f *DefaultFactory) CreateMessageAgeCollector() Collector {
	return &MessageAgeCollector{Runner: f.Runner, Managers: f.Managers, IncludeSystem: f.IncludeSystem}
}

// CreateListenerCollector creates the listener status collector.
func (f *DefaultFactory) CreateListenerCollector() Collector {
	return &ListenerCollector{Runner: f.Runner, Managers: f.Managers}
}
