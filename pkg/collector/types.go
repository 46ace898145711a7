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

	"github.com/mqops/mqstatus/pkg/record"
	"github.com/mqops/mqstatus/pkg/row"
)

// Collector gathers one status kind across the resolved resources and
// produces intermediate rows for the assembler.
//
// Resources are processed strictly sequentially, in resolver order. A
// returned error is always a fatal precondition of the whole invocation;
// per-resource failures degrade to sentinel rows and never surface here.
type Collector interface {
	Kind() record.Kind
	Collect(ctx context.Context) ([]row.Row, error)
}
