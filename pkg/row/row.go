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

import "strings"

// Sep is the field delimiter for intermediate rows: the ASCII unit separator.
// The administrative tools never emit this byte, so a delimited row can never
// be confused with payload text containing spaces, commas, or parentheses.
const Sep = "\x1f"

// Row is one intermediate record between the query/parse stage and the
// assembler: an ordered list of string fields.
type Row []string

// Join encodes the row into its delimited transport form.
func (r Row) Join() string {
	return strings.Join(r, Sep)
}

// Split decodes a delimited transport form back into a Row.
func Split(s string) Row {
	return strings.Split(s, Sep)
}

// Sanitize strips the separator byte out of a field value before it is
// placed in a row. Upstream tools never produce it, so this only matters for
// hostile or corrupted input.
func Sanitize(field string) string {
	return strings.ReplaceAll(field, Sep, "")
}
