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

package mqsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dspmqOutput = `QMNAME(QM1)                                               STATUS(Running)
QMNAME(QM2)                                               STATUS(Ended normally)
QMNAME(QM3)                                               STATUS(Running as standby)
`

const qstatusOutput = `5724-H72 (C) Copyright IBM Corp. 1994, 2024.
Starting MQSC for queue manager QM1.

AMQ8450I: Display queue status details.
   QUEUE(MY.QUEUE)                         TYPE(QUEUE)
   CURDEPTH(3)
   MSGAGE(120)
AMQ8450I: Display queue status details.
   QUEUE(SYSTEM.DEAD.LETTER.QUEUE)
   TYPE(QUEUE)                             MSGAGE(77)
AMQ8450I: Display queue status details.
   QUEUE(EMPTY.QUEUE)
One MQSC command read.
`

func TestParse_Dspmq(t *testing.T) {
	p := NewParser("QMNAME", WithFields("STATUS"))
	stanzas := p.Parse(dspmqOutput)

	require.Len(t, stanzas, 3)
	assert.Equal(t, "QM1", stanzas[0].Name)
	assert.Equal(t, "Running", stanzas[0].Get("STATUS", ""))
	assert.Equal(t, "Endednormally", stanzas[1].Get("STATUS", ""))
	assert.Equal(t, "Runningasstandby", stanzas[2].Get("STATUS", ""))
}

func TestParse_MultiLineStanzas(t *testing.T) {
	p := NewParser("QUEUE", WithFields("MSGAGE"))
	stanzas := p.Parse(qstatusOutput)

	require.Len(t, stanzas, 3)

	assert.Equal(t, "MY.QUEUE", stanzas[0].Name)
	assert.Equal(t, "120", stanzas[0].Get("MSGAGE", "0"))

	assert.Equal(t, "SYSTEM.DEAD.LETTER.QUEUE", stanzas[1].Name)
	assert.Equal(t, "77", stanzas[1].Get("MSGAGE", "0"))
}

func TestParse_ZeroAttributeStanza(t *testing.T) {
	p := NewParser("QUEUE", WithFields("MSGAGE"))
	stanzas := p.Parse(qstatusOutput)

	require.Len(t, stanzas, 3)
	assert.Equal(t, "EMPTY.QUEUE", stanzas[2].Name)
	assert.Empty(t, stanzas[2].Attrs)
	assert.Equal(t, "0", stanzas[2].Get("MSGAGE", "0"))
}

func TestParse_UnorderedAttributesSameLine(t *testing.T) {
	out := "   MSGAGE(5) QUEUE(A.Q)\n   QUEUE(B.Q) MSGAGE(9)\n"
	p := NewParser("QUEUE", WithFields("MSGAGE"))
	stanzas := p.Parse(out)

	// MSGAGE(5) precedes the first marker and belongs to no stanza.
	require.Len(t, stanzas, 2)
	assert.Equal(t, "0", stanzas[0].Get("MSGAGE", "0"))
	assert.Equal(t, "9", stanzas[1].Get("MSGAGE", "0"))
}

func TestParse_FirstOccurrenceWins(t *testing.T) {
	out := "QUEUE(A.Q)\nMSGAGE(1)\nMSGAGE(2)\n"
	p := NewParser("QUEUE", WithFields("MSGAGE"))
	stanzas := p.Parse(out)

	require.Len(t, stanzas, 1)
	assert.Equal(t, "1", stanzas[0].Get("MSGAGE", "0"))
}

func TestParse_EmptyInput(t *testing.T) {
	p := NewParser("LISTENER")

	stanzas := p.Parse("")
	assert.NotNil(t, stanzas)
	assert.Empty(t, stanzas)

	stanzas = p.Parse("AMQ8146E: IBM MQ queue manager not available.\n")
	assert.Empty(t, stanzas)
}

func TestParse_CapturesAllFieldsWithoutFilter(t *testing.T) {
	out := "QMNAME(QM1) DEADQ(SYSTEM.DEAD.LETTER.QUEUE) PLATFORM(UNIX)\n"
	p := NewParser("QMNAME")
	stanzas := p.Parse(out)

	require.Len(t, stanzas, 1)
	assert.Equal(t, "SYSTEM.DEAD.LETTER.QUEUE", stanzas[0].Get("DEADQ", ""))
	assert.Equal(t, "UNIX", stanzas[0].Get("PLATFORM", ""))
}

func TestParse_EmptyAttributeValue(t *testing.T) {
	out := "QMNAME(QM1) DEADQ( )\n"
	p := NewParser("QMNAME", WithFields("DEADQ"))
	stanzas := p.Parse(out)

	require.Len(t, stanzas, 1)
	v, ok := stanzas[0].Attrs["DEADQ"]
	require.True(t, ok)
	assert.Equal(t, "", v)
}
