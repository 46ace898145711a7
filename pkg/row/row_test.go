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

package row

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSplitRoundTrip(t *testing.T) {
	r := Row{"QM1", "MY.QUEUE", "120"}
	assert.Equal(t, r, Split(r.Join()))
}

func TestSplit_FieldsWithCommasAndParens(t *testing.T) {
	// Data containing every printable delimiter candidate still round-trips,
	// which is the reason a control character is the separator.
	r := Row{"QM1", "L1,L2", "STATUS(RUNNING)"}
	got := Split(r.Join())
	assert.Equal(t, r, got)
	assert.Len(t, got, 3)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "QM1x", Sanitize("QM1\x1fx"))
	assert.Equal(t, "clean", Sanitize("clean"))
}
