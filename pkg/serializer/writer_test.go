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

package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqops/mqstatus/pkg/record"
)

func TestSerialize_JSONBatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	batch := []record.ManagerStatus{
		{Manager: "QM1", Status: 1},
		{Manager: "QM2", Status: 0},
	}
	require.NoError(t, w.Serialize(batch))

	assert.JSONEq(t,
		`[{"Q_MANAGER":"QM1","Q_STATUS":1},{"Q_MANAGER":"QM2","Q_STATUS":0}]`,
		buf.String())
	// Single line plus trailing newline; the agent scrapes line-oriented.
	assert.Equal(t, 1, strings.Count(strings.TrimRight(buf.String(), "\n"), "\n")+1)
}

func TestSerialize_EmptyBatchIsArray(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize([]record.ListenerStatus{}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestSerialize_AllSentinelBatchIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	batch := []record.DeadLetterStatus{
		{Manager: "QM1", Status: record.DepthUnavailable, DLName: ""},
		{Manager: "QM2", Status: record.DepthUnavailable, DLName: ""},
	}
	require.NoError(t, w.Serialize(batch))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, float64(-1), decoded[0]["Q_STATUS"])
}

func TestSerialize_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize([]record.ManagerStatus{{Manager: "QM1", Status: 1}}))
	assert.Contains(t, buf.String(), "q_manager: QM1")
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	require.NoError(t, w.Serialize([]record.ManagerStatus{}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteErrorEnvelope(t *testing.T) {
	var buf bytes.Buffer
	WriteErrorEnvelope(&buf, errors.New(`registry file "broken.json" is not well-formed`))

	var env map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, `registry file "broken.json" is not well-formed`, env["error"])
}

func TestWriteErrorEnvelope_NilError(t *testing.T) {
	var buf bytes.Buffer
	WriteErrorEnvelope(&buf, nil)

	var env map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.NotEmpty(t, env["error"])
}
