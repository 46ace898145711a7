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

func deadLetterCmd() *cli.Command {
	return &cli.Command{
		Name:  "dlq",
		Usage: "collect dead-letter queue name and depth for each active queue manager",
		Description: `Resolves the configured dead-letter queue of every active manager and
emits one record per manager with the queue name and its current depth.
A manager without a dead-letter queue, or whose depth could not be read,
reports depth -1.`,
		Flags: collectorFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCollect(ctx, cmd, record.KindDeadLetter)
		},
	}
}
