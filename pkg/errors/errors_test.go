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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeMissingRegistry, "registry not found"),
			want: "[MISSING_REGISTRY] registry not found",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeRegistryParse, "bad registry", stderrors.New("unexpected EOF")),
			want: "[REGISTRY_PARSE] bad registry: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodePrivilegeDenied, "cannot switch identity", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to match the wrapped cause")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"missing dependency", New(ErrCodeMissingDependency, "no json"), ExitMissingDependency},
		{"tool missing", New(ErrCodeToolMissing, "no dspmq"), ExitMissingDependency},
		{"missing registry", New(ErrCodeMissingRegistry, "no file"), ExitMissingRegistry},
		{"parse failure", New(ErrCodeRegistryParse, "bad json"), ExitPrivilegeOrParse},
		{"privilege denied", New(ErrCodePrivilegeDenied, "no sudo"), ExitPrivilegeOrParse},
		{"plain error", stderrors.New("boom"), ExitPrivilegeOrParse},
		{"wrapped structured error", fmt.Errorf("outer: %w", New(ErrCodeMissingRegistry, "inner")), ExitMissingRegistry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCode_PlainError(t *testing.T) {
	if got := Code(stderrors.New("boom")); got != ErrCodeInternal {
		t.Errorf("Code() = %s, want %s", got, ErrCodeInternal)
	}
}
