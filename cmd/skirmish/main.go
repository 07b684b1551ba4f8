// Package main runs a battle between two rosters of units.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	skirmishcmd "github.com/louisbranch/skirmish/internal/cmd/skirmish"
	platformcmd "github.com/louisbranch/skirmish/internal/platform/cmd"
	"github.com/louisbranch/skirmish/internal/platform/config"
)

func main() {
	log.SetPrefix(platformcmd.LogPrefix(platformcmd.ServiceSkirmish))
	cfg, err := skirmishcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSkirmish, func(ctx context.Context) error {
		return skirmishcmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
