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

// Package scratch manages transient per-invocation files with guaranteed
// cleanup. Names embed the process id and a random component so independent
// concurrent invocations never collide; the id is collision avoidance, not a
// locking mechanism.
package scratch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File is a transient file that is unconditionally removed by Close,
// regardless of the exit path that triggers the deferred call.
type File struct {
	path string
}

// New creates a scratch file containing content, readable only by the
// current user.
func New(prefix string, content []byte) (*File, error) {
	path := filepath.Join(os.TempDir(),
		fmt.Sprintf("%s-%d-%s", prefix, os.Getpid(), uuid.NewString()))

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}

	return &File{path: path}, nil
}

// Path returns the scratch file location.
func (f *File) Path() string {
	return f.path
}

// Open returns a read handle positioned at the start of the file. The caller
// closes the handle; the file itself is removed by Close.
func (f *File) Open() (*os.File, error) {
	return os.Open(f.path)
}

// Close removes the scratch file. Safe to call more than once.
func (f *File) Close() error {
	if f.path == "" {
		return nil
	}
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove scratch file",
			slog.String("path", f.path),
			slog.String("error", err.Error()))
		return err
	}
	f.path = ""
	return nil
}
