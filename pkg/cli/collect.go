/*
Copyright © 2025 the mqstatus authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mqops/mqstatus/pkg/assembler"
	"github.com/mqops/mqstatus/pkg/collector"
	"github.com/mqops/mqstatus/pkg/config"
	"github.com/mqops/mqstatus/pkg/logging"
	"github.com/mqops/mqstatus/pkg/metrics"
	"github.com/mqops/mqstatus/pkg/privilege"
	"github.com/mqops/mqstatus/pkg/record"
	"github.com/mqops/mqstatus/pkg/registry"
	"github.com/mqops/mqstatus/pkg/serializer"
	"github.com/mqops/mqstatus/pkg/version"
)

func optionsFrom(cmd *cli.Command) config.Options {
	opts := config.Default()
	opts.RegistryPath = cmd.String(registryFlag.Name)
	opts.BinDir = cmd.String(binDirFlag.Name)
	opts.ServiceUser = cmd.String(serviceUserFlag.Name)
	opts.LogLevel = cmd.String(logLevelFlag.Name)
	opts.LogFile = cmd.String(logFileFlag.Name)
	opts.IncludeSystem = cmd.Bool(includeSystemFlag.Name)
	return opts
}

// runCollect is the single pipeline behind every collector subcommand:
// validate options, resolve tools and identity, gather the manager set,
// collect, assemble, and emit one record array on stdout.
func runCollect(ctx context.Context, cmd *cli.Command, kind record.Kind) error {
	opts := optionsFrom(cmd)
	if err := opts.Validate(); err != nil {
		return err
	}

	logging.SetDefaultStructuredLogger(version.Name, version.Version, opts.LogLevel, opts.LogFile)

	format := serializer.Format(cmd.String(formatFlag.Name))

	dspmqPath, err := opts.ToolPath(config.ToolDspmq)
	if err != nil {
		return err
	}
	runmqscPath, err := opts.ToolPath(config.ToolRunmqsc)
	if err != nil {
		return err
	}

	var managers []string
	if kind == record.KindManager {
		// The manager collector discovers its own fleet, but it must be able
		// to replace the registry at the end of the run.
		if err := registry.CheckWritable(opts.RegistryPath); err != nil {
			return err
		}
	} else {
		snap, err := registry.Load(opts.RegistryPath)
		if err != nil {
			return err
		}
		managers = snap.Active()
	}

	execCtx, err := privilege.Resolve(ctx, opts.ServiceUser)
	if err != nil {
		return err
	}

	factory := &collector.DefaultFactory{
		Runner: &collector.Runner{
			Exec:        execCtx,
			DspmqPath:   dspmqPath,
			RunmqscPath: runmqscPath,
		},
		RegistryPath:  opts.RegistryPath,
		Managers:      managers,
		IncludeSystem: opts.IncludeSystem,
	}

	col := collectorFor(factory, kind)

	start := time.Now()
	rows, err := col.Collect(ctx)
	metrics.CollectionDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	records := assembler.Assemble(kind, rows)
	count := reflect.ValueOf(records).Len()
	metrics.RecordsEmitted.WithLabelValues(string(kind)).Set(float64(count))

	if err := serializer.NewStdoutWriter(format).Serialize(records); err != nil {
		return err
	}

	slog.Debug("collection finished",
		slog.String("kind", string(kind)),
		slog.Int("managers", len(managers)),
		slog.Int("records", count),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func collectorFor(f collector.Factory, kind record.Kind) collector.Collector {
	switch kind {
	case record.KindCommandServer:
		return f.CreateCommandServerCollector()
	case record.KindDeadLetter:
		return f.CreateDeadLetterCollector()
	case record.KindMessageAge:
		return f.CreateMessageAgeCollector()
	case record.KindListener:
		return f.CreateListenerCollector()
	default:
		return f.CreateManagerCollector()
	}
}
