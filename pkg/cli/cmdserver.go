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

func cmdServerCmd() *cli.Command {
	return &cli.Command{
		Name:  "cmdserver",
		Usage: "collect command-server state for each active queue manager",
		Description: `Queries the command-server status of every active manager in the registry
and emits one record per manager with status "1" (running) or "0".`,
		Flags: collectorFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCollect(ctx, cmd, record.KindCommandServer)
		},
	}
}
