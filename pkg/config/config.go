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

package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mqops/mqstatus/pkg/errors"
)

// Administrative tool binary names.
const (
	ToolDspmq   = "dspmq"
	ToolRunmqsc = "runmqsc"
)

// Options carries every external input a collector invocation honors.
type Options struct {
	// RegistryPath is the shared registry snapshot file.
	RegistryPath string `validate:"required"`

	// BinDir optionally pins the directory holding the administrative tools.
	// When empty the tools are resolved through PATH.
	BinDir string `validate:"omitempty,dir"`

	// ServiceUser is the identity required by the administrative tools.
	ServiceUser string `validate:"required,excludesall= \t"`

	// IncludeSystem includes SYSTEM.* queues and the manager's own
	// dead-letter queue in message-age output.
	IncludeSystem bool

	// LogLevel selects debug-channel verbosity.
	LogLevel string `validate:"omitempty,oneof=debug info warn warning error"`

	// LogFile optionally mirrors diagnostics into a rotated file.
	LogFile string
}

// Default returns the options used when no flag or environment override is
// present.
func Default() Options {
	return Options{
		RegistryPath: "/var/lib/mqstatus/registry.json",
		ServiceUser:  "mqm",
		LogLevel:     "info",
	}
}

var validate = validator.New()

// Validate checks the options for structural problems before any work
// starts. Level names are matched case-insensitively.
func (o *Options) Validate() error {
	o.LogLevel = strings.ToLower(strings.TrimSpace(o.LogLevel))
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// ToolPath resolves an administrative tool binary. When BinDir is set the
// tool must live there; otherwise PATH decides. A missing tool is a fatal
// precondition (ErrCodeToolMissing), reported before any resource is
// processed.
func (o *Options) ToolPath(name string) (string, error) {
	if o.BinDir != "" {
		path := filepath.Join(o.BinDir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return "", errors.Wrap(errors.ErrCodeToolMissing,
				fmt.Sprintf("administrative tool %s not found in %s", name, o.BinDir), err)
		}
		return path, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeToolMissing,
			fmt.Sprintf("administrative tool %s not found in PATH", name), err)
	}
	return path, nil
}
