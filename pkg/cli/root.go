/*
Copyright © 2025 the mqstatus authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mqops/mqstatus/pkg/config"
	"github.com/mqops/mqstatus/pkg/errors"
	"github.com/mqops/mqstatus/pkg/serializer"
	"github.com/mqops/mqstatus/pkg/version"
)

// Shared flags. Every collector subcommand carries the full set so each one
// can run standalone under the scheduler.
var (
	registryFlag = &cli.StringFlag{
		Name:    "registry",
		Usage:   "path of the shared queue-manager registry file",
		Sources: cli.EnvVars("MQSTATUS_REGISTRY"),
		Value:   config.Default().RegistryPath,
	}

	binDirFlag = &cli.StringFlag{
		Name:    "mq-bin-dir",
		Usage:   "directory holding the MQ administrative tools (default: resolve via PATH)",
		Sources: cli.EnvVars("MQSTATUS_MQ_BIN_DIR"),
	}

	serviceUserFlag = &cli.StringFlag{
		Name:    "service-user",
		Usage:   "identity required by the MQ administrative tools",
		Sources: cli.EnvVars("MQSTATUS_SERVICE_USER"),
		Value:   config.Default().ServiceUser,
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   fmt.Sprintf("output format, one of %v", serializer.SupportedFormats()),
		Sources: cli.EnvVars("MQSTATUS_FORMAT"),
		Value:   string(serializer.FormatJSON),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "diagnostics log level (debug, info, warn, error)",
		Sources: cli.EnvVars("MQSTATUS_LOG_LEVEL", "LOG_LEVEL"),
		Value:   config.Default().LogLevel,
	}

	logFileFlag = &cli.StringFlag{
		Name:    "log-file",
		Usage:   "optional rotated file receiving a copy of the diagnostics",
		Sources: cli.EnvVars("MQSTATUS_LOG_FILE"),
	}

	includeSystemFlag = &cli.BoolFlag{
		Name:    "include-system",
		Usage:   "include SYSTEM.* queues and the dead-letter queue in message-age output",
		Sources: cli.EnvVars("MQSTATUS_INCLUDE_SYSTEM"),
	}
)

func collectorFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		registryFlag,
		binDirFlag,
		serviceUserFlag,
		formatFlag,
		logLevelFlag,
		logFileFlag,
	}
	return append(flags, extra...)
}

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  version.Name,
		Usage:                 "MQ fleet status collectors",
		EnableShellCompletion: true,
		Description: fmt.Sprintf(`mqstatus - MQ fleet status collectors

Version: %s
Commit:  %s
Built:   %s

Each subcommand runs one collection pipeline against the local MQ
installation under the service identity and prints an array of status
records to stdout for the monitoring agent to scrape:

manager   - queue-manager run states; rewrites the shared registry
cmdserver - command-server state per active manager
dlq       - dead-letter queue name and depth per active manager
msgage    - oldest message age per queue per active manager
listener  - listener count and names per active manager`, version.Version, version.Commit, version.Date),
		Commands: []*cli.Command{
			managerCmd(),
			cmdServerCmd(),
			deadLetterCmd(),
			messageAgeCmd(),
			listenerCmd(),
			versionCmd(),
		},
	}
}

// Execute is called by main. Fatal preconditions produce exactly one error
// envelope on stdout plus the category's exit code.
func Execute() {
	if err := New().Run(context.Background(), os.Args); err != nil {
		serializer.WriteErrorEnvelope(os.Stdout, err)
		os.Exit(errors.ExitCode(err))
	}
}
