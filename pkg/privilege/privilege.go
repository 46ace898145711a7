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

package privilege

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"os/user"

	"github.com/mqops/mqstatus/pkg/errors"
)

// Mode is the outcome of the per-invocation privilege decision.
type Mode int

const (
	// SelfIdentity means the process already runs as the service identity.
	SelfIdentity Mode = iota
	// DelegatedNonInteractive means queries run through a verified,
	// prompt-free identity switch.
	DelegatedNonInteractive
	// Denied means neither path is available and the invocation must abort
	// before any administrative query.
	Denied
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case SelfIdentity:
		return "self"
	case DelegatedNonInteractive:
		return "delegated"
	default:
		return "denied"
	}
}

// ExecutionContext runs administrative commands under the service identity.
type ExecutionContext interface {
	// Probe verifies the context is usable with a no-op command, without
	// side effects.
	Probe(ctx context.Context) bool
	// Run executes the command with the given stdin and returns its combined
	// output. Output is returned even when the command exits non-zero so the
	// caller can degrade to sentinel values instead of failing the batch.
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error)
}

// Decide is the pure 3-way decision over the probe results, independent of
// the OS-specific switching mechanism. Re-evaluated on every invocation; the
// bridge holds no state between runs.
func Decide(isSelf, delegationProbeOK bool) Mode {
	switch {
	case isSelf:
		return SelfIdentity
	case delegationProbeOK:
		return DelegatedNonInteractive
	default:
		return Denied
	}
}

// Resolve determines how this invocation reaches the service identity and
// returns a ready ExecutionContext, or an ErrCodePrivilegeDenied error when
// neither direct nor delegated execution is available.
func Resolve(ctx context.Context, serviceUser string) (ExecutionContext, error) {
	isSelf := false
	if current, err := user.Current(); err == nil {
		isSelf = current.Username == serviceUser
	}

	delegated := &delegatedContext{user: serviceUser}

	probeOK := false
	if !isSelf {
		probeOK = delegated.Probe(ctx)
	}

	mode := Decide(isSelf, probeOK)
	slog.Debug("privilege bridge resolved",
		slog.String("serviceUser", serviceUser),
		slog.String("mode", mode.String()))

	switch mode {
	case SelfIdentity:
		return &selfContext{}, nil
	case DelegatedNonInteractive:
		return delegated, nil
	default:
		return nil, errors.New(errors.ErrCodePrivilegeDenied,
			fmt.Sprintf("not running as %q and non-interactive switch to it is unavailable", serviceUser))
	}
}

// selfContext executes commands directly: the process identity already is
// the service identity.
type selfContext struct{}

func (c *selfContext) Probe(ctx context.Context) bool {
	return ctx.Err() == nil
}

func (c *selfContext) Run(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	return cmd.CombinedOutput()
}

// delegatedContext executes commands through a non-interactive sudo switch to
// the service identity. The -n flag guarantees no prompt can block a
// scheduled, unattended run.
type delegatedContext struct {
	user string
}

func (c *delegatedContext) Probe(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "sudo", "-n", "-u", c.user, "true")
	return cmd.Run() == nil
}

func (c *delegatedContext) Run(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error) {
	argv := append([]string{"-n", "-u", c.user, name}, args...)
	cmd := exec.CommandContext(ctx, "sudo", argv...)
	cmd.Stdin = stdin
	return cmd.CombinedOutput()
}
