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
	"encoding/json"
	"fmt"
	"io"
)

// ErrorEnvelope is the uniform fatal-error object: exactly one JSON object
// with a single error field, paired with a non-zero exit code by the caller.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// WriteErrorEnvelope emits the error envelope for a fatal precondition.
// Quote characters and other JSON-sensitive content in the message are
// escaped by the encoder, so the output is always one valid JSON object.
func WriteErrorEnvelope(w io.Writer, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	data, merr := json.Marshal(ErrorEnvelope{Error: msg})
	if merr != nil {
		// Unreachable for a plain string field, but never emit nothing.
		fmt.Fprintln(w, `{"error":"unserializable error"}`)
		return
	}
	fmt.Fprintln(w, string(data))
}
