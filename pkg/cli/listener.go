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

func listenerCmd() *cli.Command {
	return &cli.Command{
		Name:  "listener",
		Usage: "collect running listener count and names for each active queue manager",
		Description: `Queries listener status on every active manager and emits one record per
manager with the number of running listeners and their comma-joined names.`,
		Flags: collectorFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCollect(ctx, cmd, record.KindListener)
		},
	}
}
