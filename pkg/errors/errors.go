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
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeMissingDependency indicates a required serialization or tool
	// dependency is absent.
	ErrCodeMissingDependency ErrorCode = "MISSING_DEPENDENCY"
	// ErrCodeMissingRegistry indicates the registry file does not exist or
	// its directory is not writable.
	ErrCodeMissingRegistry ErrorCode = "MISSING_REGISTRY"
	// ErrCodeRegistryParse indicates the registry file content is not
	// well-formed JSON.
	ErrCodeRegistryParse ErrorCode = "REGISTRY_PARSE"
	// ErrCodePrivilegeDenied indicates the required service identity could
	// not be obtained.
	ErrCodePrivilegeDenied ErrorCode = "PRIVILEGE_DENIED"
	// ErrCodeToolMissing indicates an administrative tool binary was not found.
	ErrCodeToolMissing ErrorCode = "TOOL_MISSING"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Exit codes shared by every collector subcommand. The monitoring agent keys
// off these values, so the mapping is part of the wire contract.
const (
	ExitOK = 0
	// ExitMissingDependency covers both an unusable serialization path and a
	// missing administrative tool binary.
	ExitMissingDependency = 1
	// ExitMissingRegistry covers a missing registry file and an unwritable
	// registry directory.
	ExitMissingRegistry = 2
	// ExitPrivilegeOrParse covers privilege denial and registry parse
	// failures; the error message distinguishes the two.
	ExitPrivilegeOrParse = 3
)

// StructuredError provides structured error information for better
// observability. It includes an error code for programmatic handling, a
// human-readable message, and the underlying cause.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Code extracts the ErrorCode from err. Errors that carry no StructuredError
// classify as ErrCodeInternal.
func Code(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// ExitCode maps an error to the process exit code contract. Nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch Code(err) {
	case ErrCodeMissingDependency, ErrCodeToolMissing:
		return ExitMissingDependency
	case ErrCodeMissingRegistry:
		return ExitMissingRegistry
	default:
		return ExitPrivilegeOrParse
	}
}
