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
	"fmt"
	"log/slog"

	"github.com/mqops/mqstatus/pkg/privilege"
	"github.com/mqops/mqstatus/pkg/scratch"
)

// Runner issues administrative queries against one queue manager at a time
// under the resolved execution identity.
type Runner struct {
	Exec        privilege.ExecutionContext
	DspmqPath   string
	RunmqscPath string
}

// Dspmq runs dspmq and returns its combined output. dspmq lists every queue
// manager known to the installation, so it takes no resource argument.
func (r *Runner) Dspmq(ctx context.Context) (string, error) {
	out, err := r.Exec.Run(ctx, nil, r.DspmqPath)
	if err != nil {
		return string(out), fmt.Errorf("dspmq failed: %w", err)
	}
	return string(out), nil
}

// Mqsc feeds one MQSC command to runmqsc against the named manager and
// returns the combined output.
//
// The command is staged through a scratch file rather than an in-memory pipe
// so a delegated (sudo) run reads a plain file descriptor; the file is
// removed on every exit path. Output is returned even on error: runmqsc exits
// non-zero for conditions that still produce parseable text, and the caller
// degrades to sentinel values rather than failing the batch.
func (r *Runner) Mqsc(ctx context.Context, manager, command string) (string, error) {
	script, err := scratch.New("mqsc", []byte(command+"\n"))
	if err != nil {
		return "", fmt.Errorf("failed to stage mqsc script: %w", err)
	}
	defer func() { _ = script.Close() }()

	stdin, err := script.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open mqsc script: %w", err)
	}
	defer func() { _ = stdin.Close() }()

	out, err := r.Exec.Run(ctx, stdin, r.RunmqscPath, manager)
	if err != nil {
		slog.Debug("runmqsc returned an error",
			slog.String("manager", manager),
			slog.String("command", command),
			slog.String("error", err.Error()))
		return string(out), fmt.Errorf("runmqsc %s failed: %w", manager, err)
	}
	return string(out), nil
}
