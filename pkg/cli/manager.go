/*
Copyright © 2025 the mqstatus authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mqops/mqstatus/pkg/record"
)

func managerCmd() *cli.Command {
	return &cli.Command{
		Name:  "manager",
		Usage: "collect queue-manager run states and rewrite the registry",
		Description: `Runs the manager inventory tool, emits one record per queue manager with
its numeric run state (0 not running, 1 running, 2 standby), and atomically
replaces the shared registry snapshot that the other collectors read.`,
		Flags: collectorFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCollect(ctx, cmd, record.KindManager)
		},
	}
}
