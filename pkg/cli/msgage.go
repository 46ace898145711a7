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

func messageAgeCmd() *cli.Command {
	return &cli.Command{
		Name:  "msgage",
		Usage: "collect the oldest message age per queue for each active queue manager",
		Description: `Queries per-queue status on every active manager and emits one record per
queue with the age in seconds of its oldest message. SYSTEM.* queues and
the manager's own dead-letter queue are skipped unless --include-system
is set.`,
		Flags: collectorFlags(includeSystemFlag),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCollect(ctx, cmd, record.KindMessageAge)
		},
	}
}
